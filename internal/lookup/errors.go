package lookup

import "errors"

// Sentinel errors for the lookup service layer.
var (
	// ErrNotFound is returned when a well-formed identifier matches no row.
	ErrNotFound = errors.New("business not found")

	// ErrBatchTooLarge is returned when a batch request carries more than
	// MaxBatchSize addresses. The check runs before any normalization.
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)
