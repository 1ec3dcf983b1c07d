package lookup

import (
	"fmt"

	"github.com/eagleinfo/business-api/internal/identifier"
)

// PredicateMode is the logical rule used to build a query's filter.
type PredicateMode int

const (
	// ModeEQ compares one column for exact equality.
	ModeEQ PredicateMode = iota
	// ModeEQFold compares one column case-insensitively.
	ModeEQFold
	// ModeInSet matches rows where any listed column is a member of the
	// set bound for that column.
	ModeInSet
	// ModeOrAcross matches rows where any listed column equals its bound
	// value.
	ModeOrAcross
	// ModeNotNull matches rows where the single listed column is populated.
	ModeNotNull
)

func (m PredicateMode) String() string {
	switch m {
	case ModeEQ:
		return "eq"
	case ModeEQFold:
		return "eq_fold"
	case ModeInSet:
		return "in_set"
	case ModeOrAcross:
		return "or_across"
	case ModeNotNull:
		return "not_null"
	}
	return "unknown"
}

// Cardinality declares how many rows a lookup expects back.
type Cardinality int

const (
	// AtMostOne lookups resolve to a single business or ErrNotFound.
	AtMostOne Cardinality = iota
	// Many lookups resolve to a counted collection, possibly empty.
	Many
)

// QuerySpec describes one parameterized query against the businesses
// table. A spec is built once per request, never mutated, and consumed
// exactly once by the executor. Rows always come back in primary-key
// order, bounded by Limit and Offset.
type QuerySpec struct {
	Columns     []string
	Mode        PredicateMode
	Params      []interface{}
	Cardinality Cardinality
	Limit       int
	Offset      int
}

// Row caps attached to every spec. AtMostOne lookups fetch two rows so a
// uniqueness violation stays visible without an unbounded read.
const (
	atMostOneRowCap = 2
	manyRowCap      = 100
	batchRowCap     = 1000
)

// Column sets for identifiers that the store scatters across several
// columns.
var (
	emailColumns  = []string{"email_1", "email_2", "email_3"}
	googleColumns = []string{"google_id", "cid", "kgmid"}
)

// BuildLookup maps a canonical identifier onto the columns and predicate
// that answer it.
func BuildLookup(id identifier.Canonical) (QuerySpec, error) {
	switch id.Kind {
	case identifier.KindDomain:
		// Stored site values are not reliably lowercased.
		return QuerySpec{
			Columns:     []string{"site"},
			Mode:        ModeEQFold,
			Params:      []interface{}{id.Value},
			Cardinality: Many,
			Limit:       manyRowCap,
		}, nil
	case identifier.KindLinkedin:
		return QuerySpec{
			Columns:     []string{"linkedin"},
			Mode:        ModeEQ,
			Params:      []interface{}{id.Value},
			Cardinality: Many,
			Limit:       manyRowCap,
		}, nil
	case identifier.KindPlaceID:
		return QuerySpec{
			Columns:     []string{"place_id"},
			Mode:        ModeEQ,
			Params:      []interface{}{id.Value},
			Cardinality: AtMostOne,
			Limit:       atMostOneRowCap,
		}, nil
	case identifier.KindEmail:
		// A hit in any of the three email columns counts, so the one value
		// is bound once per column.
		return QuerySpec{
			Columns:     emailColumns,
			Mode:        ModeOrAcross,
			Params:      []interface{}{id.Value, id.Value, id.Value},
			Cardinality: AtMostOne,
			Limit:       atMostOneRowCap,
		}, nil
	case identifier.KindGoogleID:
		// The source data populates google_id, cid and kgmid inconsistently
		// for the same logical identifier.
		return QuerySpec{
			Columns:     googleColumns,
			Mode:        ModeOrAcross,
			Params:      []interface{}{id.Value, id.Value, id.Value},
			Cardinality: Many,
			Limit:       manyRowCap,
		}, nil
	}
	return QuerySpec{}, fmt.Errorf("no lookup defined for identifier kind %q", id.Kind)
}

// BuildBatchEmail matches any business whose email columns intersect the
// given set of normalized addresses. A business matching on two input
// addresses still appears once; it is a single row in a single statement.
func BuildBatchEmail(addrs []string) QuerySpec {
	return QuerySpec{
		Columns:     emailColumns,
		Mode:        ModeInSet,
		Params:      []interface{}{addrs, addrs, addrs},
		Cardinality: Many,
		Limit:       batchRowCap,
	}
}

// BuildEnrichedScan pages through every business with a populated primary
// email address.
func BuildEnrichedScan(p Page) QuerySpec {
	return QuerySpec{
		Columns:     []string{"email_1"},
		Mode:        ModeNotNull,
		Cardinality: Many,
		Limit:       p.Limit,
		Offset:      p.Offset,
	}
}
