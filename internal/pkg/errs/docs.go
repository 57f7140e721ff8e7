// Package errs provides standardized error types for the parcel application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package carries one type per failure kind of the order lifecycle:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is outside the recognized set
//   - ObjectNotFoundError: for when an account, agent or order cannot be resolved
//   - PermissionDeniedError: for when an actor lacks authority over an order
//   - InvalidTransitionError: for when a status change is not in the role's table
//   - ValidationFailedError: for when a structural completeness check rejects an order
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers can classify
//     failures with errors.Is instead of matching message text
package errs
