// Package errs provides the typed errors shared by the marketplace core and its adapters.
//
// Each kind follows the same pattern:
//   - a sentinel error variable (e.g., ErrInvalidState)
//   - a struct type carrying the details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Field validation kinds (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange) are
// aggregated with errors.Join by domain constructors. Cross-entity preconditions
// fail fast with InvalidState, Forbidden, Conflict or ObjectNotFound. Adapters
// classify with errors.Is against the sentinels.
package errs
