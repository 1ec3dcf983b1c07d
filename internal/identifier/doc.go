// Package identifier normalizes loosely formatted lookup input into
// canonical identifier values.
//
// Each supported kind has one canonical form that every equivalent raw
// spelling reduces to: web domains lose their scheme, path, port and
// "www." prefix; email addresses are lowercased and structurally
// validated; LinkedIn URLs reduce to their "company/<slug>" style profile
// path; mapping-service place and Google identifiers keep their exact
// case and are only trimmed.
//
// Every input string maps to either a canonical value or an error
// wrapping ErrInvalid, never a partially normalized value. Nothing here
// touches the network or the database.
package identifier
