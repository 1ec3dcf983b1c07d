package lookup

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eagleinfo/business-api/internal/domain"
	"github.com/eagleinfo/business-api/internal/identifier"
	"github.com/eagleinfo/business-api/internal/metrics"
	"github.com/eagleinfo/business-api/internal/pkg/logger"
)

// MaxBatchSize caps how many addresses one batch request may carry. The
// cap applies to the raw input, before any normalization.
const MaxBatchSize = 100

// Collection is a counted set of businesses. Count always equals
// len(Businesses); an empty result is a zero count, never a lookup error.
type Collection struct {
	Count      int               `json:"count"`
	Businesses []domain.Business `json:"businesses"`
}

// Service answers identifier lookups against a business store.
type Service struct {
	exec    Executor
	metrics *metrics.Metrics
}

// NewService constructs a Service over the given executor. The metrics
// handle may be nil.
func NewService(exec Executor, m *metrics.Metrics) *Service {
	return &Service{exec: exec, metrics: m}
}

// ByDomain returns every business whose site matches the given domain
// after normalization.
func (s *Service) ByDomain(ctx context.Context, raw string) (*Collection, error) {
	return s.lookupMany(ctx, identifier.KindDomain, raw)
}

// ByLinkedin returns every business whose LinkedIn slug matches the
// given URL or slug after normalization.
func (s *Service) ByLinkedin(ctx context.Context, raw string) (*Collection, error) {
	return s.lookupMany(ctx, identifier.KindLinkedin, raw)
}

// ByGoogleID returns every business matching the given Google identifier
// in any of its google_id, cid or kgmid columns.
func (s *Service) ByGoogleID(ctx context.Context, raw string) (*Collection, error) {
	return s.lookupMany(ctx, identifier.KindGoogleID, raw)
}

// ByPlaceID resolves a Google place ID to a single business.
func (s *Service) ByPlaceID(ctx context.Context, raw string) (*domain.Business, error) {
	return s.lookupOne(ctx, identifier.KindPlaceID, raw)
}

// ByEmail resolves an email address to a single business, matching any
// of the store's three email columns.
func (s *Service) ByEmail(ctx context.Context, raw string) (*domain.Business, error) {
	return s.lookupOne(ctx, identifier.KindEmail, raw)
}

func (s *Service) lookupMany(ctx context.Context, kind identifier.Kind, raw string) (*Collection, error) {
	id, err := identifier.Normalize(kind, raw)
	if err != nil {
		s.metrics.IncrementLookup(string(kind), "invalid")
		return nil, err
	}
	spec, err := BuildLookup(id)
	if err != nil {
		return nil, err
	}
	rows, err := s.exec.Query(ctx, spec)
	if err != nil {
		s.metrics.IncrementLookup(string(kind), "error")
		return nil, err
	}
	s.metrics.IncrementLookup(string(kind), "ok")
	return newCollection(rows), nil
}

func (s *Service) lookupOne(ctx context.Context, kind identifier.Kind, raw string) (*domain.Business, error) {
	id, err := identifier.Normalize(kind, raw)
	if err != nil {
		s.metrics.IncrementLookup(string(kind), "invalid")
		return nil, err
	}
	spec, err := BuildLookup(id)
	if err != nil {
		return nil, err
	}
	rows, err := s.exec.Query(ctx, spec)
	if err != nil {
		s.metrics.IncrementLookup(string(kind), "error")
		return nil, err
	}
	if len(rows) == 0 {
		s.metrics.IncrementLookup(string(kind), "not_found")
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id.Value)
	}
	if len(rows) > 1 {
		// The store promises uniqueness for this identifier but delivered
		// more than one row. Keep serving from the lowest id and leave a
		// reference for the data team.
		ref := uuid.New().String()
		logger.Warn("integrity anomaly: identifier matched multiple rows",
			"ref", ref,
			"kind", string(kind),
			"value", id.Value,
			"returned_id", rows[0].ID)
		s.metrics.IncrementAnomaly(string(kind))
	}
	s.metrics.IncrementLookup(string(kind), "ok")
	return &rows[0], nil
}

// ByEmailBatch resolves up to MaxBatchSize addresses in one statement.
// Malformed addresses are skipped, duplicates collapse after
// normalization, and a batch with no usable address yields an empty
// collection rather than an error.
func (s *Service) ByEmailBatch(ctx context.Context, raws []string) (*Collection, error) {
	if len(raws) > MaxBatchSize {
		s.metrics.IncrementLookup("email_batch", "batch_too_large")
		return nil, fmt.Errorf("%w: got %d addresses, maximum is %d", ErrBatchTooLarge, len(raws), MaxBatchSize)
	}
	if len(raws) == 0 {
		s.metrics.IncrementLookup("email_batch", "invalid")
		return nil, fmt.Errorf("%w: batch contains no addresses", identifier.ErrInvalid)
	}

	seen := make(map[string]bool, len(raws))
	addrs := make([]string, 0, len(raws))
	for _, raw := range raws {
		id, err := identifier.Normalize(identifier.KindEmail, raw)
		if err != nil {
			logger.Warn("skipping malformed batch address", "address", raw, "error", err)
			continue
		}
		if seen[id.Value] {
			continue
		}
		seen[id.Value] = true
		addrs = append(addrs, id.Value)
	}
	if len(addrs) == 0 {
		s.metrics.IncrementLookup("email_batch", "ok")
		return newCollection(nil), nil
	}

	rows, err := s.exec.Query(ctx, BuildBatchEmail(addrs))
	if err != nil {
		s.metrics.IncrementLookup("email_batch", "error")
		return nil, err
	}
	s.metrics.IncrementLookup("email_batch", "ok")
	return newCollection(rows), nil
}

// EnrichedContacts pages through businesses that carry a primary email
// address. Limit and offset are clamped, not rejected.
func (s *Service) EnrichedContacts(ctx context.Context, limit, offset int) (*Collection, error) {
	page := NewPage(limit, offset)
	rows, err := s.exec.Query(ctx, BuildEnrichedScan(page))
	if err != nil {
		s.metrics.IncrementLookup("enriched", "error")
		return nil, err
	}
	s.metrics.IncrementLookup("enriched", "ok")
	return newCollection(rows), nil
}

func newCollection(rows []domain.Business) *Collection {
	if rows == nil {
		rows = []domain.Business{}
	}
	return &Collection{Count: len(rows), Businesses: rows}
}
