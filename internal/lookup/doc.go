// Package lookup builds and runs identifier lookups against the business
// store.
//
// Every request follows the same path: normalize the raw identifier,
// build an immutable QuerySpec naming the columns, predicate mode and
// parameters to use, hand it to the Executor for a single round trip,
// and shape the returned rows into either one business or a counted
// collection. The service holds no state across requests and never
// retries; cancellation and timeouts belong to the executor.
package lookup
