package lookup

// Pagination bounds for collection scans. Out-of-range requests are
// clamped rather than rejected.
const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// Page is a validated limit/offset pair.
type Page struct {
	Limit  int
	Offset int
}

// NewPage clamps raw limit and offset values into the supported range.
// A non-positive limit falls back to DefaultPageSize, an oversized one
// to MaxPageSize, and a negative offset to zero.
func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}
