package api

import (
	"net/http"
	"strconv"
)

// parseLimitOffset extracts limit and offset from query params. Missing
// or unparseable values come back as zero; the lookup layer clamps them
// into range, so a bad value degrades to the default page rather than a
// rejected request.
func parseLimitOffset(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
