package lookup

import (
	"context"

	"github.com/eagleinfo/business-api/internal/domain"
)

// Executor runs one QuerySpec in a single round trip against the store.
// Implementations must return rows in ascending primary-key order and
// honor context cancellation.
type Executor interface {
	Query(ctx context.Context, spec QuerySpec) ([]domain.Business, error)
}
