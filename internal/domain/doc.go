// Package domain defines the core business types for the lookup API.
//
// Types in this package are pure value objects with no behavior, no
// database dependencies, and no HTTP concerns. They are the shared
// language between handlers, the lookup service, and the repository.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON/DB tags are allowed (they're metadata, not behavior)
//   - Constants and column lists belong here
package domain
