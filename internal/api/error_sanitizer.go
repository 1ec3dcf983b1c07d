package api

import (
	"net/http"
	"strings"

	"github.com/eagleinfo/business-api/internal/pkg/logger"
	"github.com/google/uuid"
)

// =============================================================================
// ERROR SANITIZER
// Server-side failures never reach consumers verbatim. Driver messages can
// carry hostnames or credentials from a DSN, so every 5xx body gets a generic
// message plus a reference id while the real error goes to the log under the
// same id.
// =============================================================================

// errorCategories maps substrings of internal error text to the public
// message for that failure class. First match wins and the order is
// load-bearing: store errors arrive wrapped with "query"/"scan" verbs, so a
// wrapped "context deadline exceeded" must hit the timeout entry before the
// database entry claims it.
var errorCategories = []struct {
	public   string
	patterns []string
}{
	{"Service temporarily unavailable", []string{"connection refused", "connection reset", "no such host", "dial tcp"}},
	{"Request timed out", []string{"timeout", "deadline exceeded", "context canceled"}},
	{"A database error occurred", []string{"sql", "pq:", "query", "scan", "database"}},
}

// respondSafeError logs the full internal error under a fresh reference id
// and sends a sanitized JSON body carrying the same id, so a consumer report
// can be matched back to a log line.
func respondSafeError(w http.ResponseWriter, code int, internalErr error, publicMsg string) {
	ref := uuid.New().String()
	if internalErr != nil {
		logger.Error("request failed",
			"ref", ref,
			"status", code,
			"public", publicMsg,
			"error", internalErr)
	}
	respondJSON(w, code, map[string]string{"error": publicMsg, "ref": ref})
}

// safeErrorMessage picks the public message for an error. Client errors
// describe the caller's own input and pass through unchanged; server errors
// are reduced to their category's generic message.
func safeErrorMessage(code int, internalErr error) string {
	if code < 500 {
		if internalErr != nil {
			return internalErr.Error()
		}
		return "Bad request"
	}
	if internalErr == nil {
		return "An internal error occurred"
	}

	errStr := strings.ToLower(internalErr.Error())
	for _, cat := range errorCategories {
		for _, p := range cat.patterns {
			if strings.Contains(errStr, p) {
				return cat.public
			}
		}
	}
	return "An internal error occurred"
}
