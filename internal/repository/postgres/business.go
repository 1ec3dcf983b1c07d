package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/eagleinfo/business-api/internal/domain"
	"github.com/eagleinfo/business-api/internal/lookup"
	"github.com/eagleinfo/business-api/internal/metrics"
)

// BusinessRepo implements lookup.Executor against PostgreSQL.
type BusinessRepo struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// NewBusinessRepo creates a Postgres-backed business executor. The
// metrics handle may be nil.
func NewBusinessRepo(db *sql.DB, m *metrics.Metrics) *BusinessRepo {
	return &BusinessRepo{db: db, metrics: m}
}

// Query renders the spec into one SELECT and runs it in a single round
// trip. Rows come back in primary-key order with the full projection.
func (r *BusinessRepo) Query(ctx context.Context, spec lookup.QuerySpec) ([]domain.Business, error) {
	q, args, err := renderSelect(spec)
	if err != nil {
		return nil, fmt.Errorf("render business query: %w", err)
	}

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, q, args...)
	r.metrics.ObserveQueryLatency(spec.Mode.String(), time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("query businesses: %w", err)
	}
	defer rows.Close()

	var out []domain.Business
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(b.ScanDest()...); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}
	return out, nil
}

// renderSelect turns a QuerySpec into SQL with positional parameters.
// Every statement selects the full column list and orders by id so
// callers see a deterministic first row.
func renderSelect(spec lookup.QuerySpec) (string, []interface{}, error) {
	where, args, err := renderPredicate(spec)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(domain.Columns(), ", "))
	sb.WriteString(" FROM businesses WHERE ")
	sb.WriteString(where)
	sb.WriteString(" ORDER BY id ASC")

	idx := len(args) + 1
	if spec.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", idx))
		args = append(args, spec.Limit)
		idx++
	}
	if spec.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", idx))
		args = append(args, spec.Offset)
	}
	return sb.String(), args, nil
}

func renderPredicate(spec lookup.QuerySpec) (string, []interface{}, error) {
	switch spec.Mode {
	case lookup.ModeEQ:
		if len(spec.Columns) != 1 || len(spec.Params) != 1 {
			return "", nil, fmt.Errorf("eq predicate needs one column and one param, got %d/%d",
				len(spec.Columns), len(spec.Params))
		}
		return fmt.Sprintf("%s = $1", spec.Columns[0]), []interface{}{spec.Params[0]}, nil

	case lookup.ModeEQFold:
		if len(spec.Columns) != 1 || len(spec.Params) != 1 {
			return "", nil, fmt.Errorf("eq_fold predicate needs one column and one param, got %d/%d",
				len(spec.Columns), len(spec.Params))
		}
		return fmt.Sprintf("lower(%s) = lower($1)", spec.Columns[0]), []interface{}{spec.Params[0]}, nil

	case lookup.ModeOrAcross:
		if len(spec.Columns) == 0 || len(spec.Columns) != len(spec.Params) {
			return "", nil, fmt.Errorf("or_across predicate needs matching columns and params, got %d/%d",
				len(spec.Columns), len(spec.Params))
		}
		parts := make([]string, len(spec.Columns))
		args := make([]interface{}, len(spec.Params))
		for i, col := range spec.Columns {
			parts[i] = fmt.Sprintf("%s = $%d", col, i+1)
			args[i] = spec.Params[i]
		}
		return strings.Join(parts, " OR "), args, nil

	case lookup.ModeInSet:
		if len(spec.Columns) == 0 || len(spec.Columns) != len(spec.Params) {
			return "", nil, fmt.Errorf("in_set predicate needs matching columns and params, got %d/%d",
				len(spec.Columns), len(spec.Params))
		}
		parts := make([]string, len(spec.Columns))
		args := make([]interface{}, len(spec.Params))
		for i, col := range spec.Columns {
			set, ok := spec.Params[i].([]string)
			if !ok {
				return "", nil, fmt.Errorf("in_set predicate param %d has type %T, want []string", i, spec.Params[i])
			}
			parts[i] = fmt.Sprintf("%s = ANY($%d)", col, i+1)
			args[i] = pq.Array(set)
		}
		return strings.Join(parts, " OR "), args, nil

	case lookup.ModeNotNull:
		if len(spec.Columns) != 1 || len(spec.Params) != 0 {
			return "", nil, fmt.Errorf("not_null predicate needs one column and no params, got %d/%d",
				len(spec.Columns), len(spec.Params))
		}
		return spec.Columns[0] + " IS NOT NULL", nil, nil
	}
	return "", nil, fmt.Errorf("unsupported predicate mode %v", spec.Mode)
}
