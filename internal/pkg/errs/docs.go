// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application and mapped to HTTP statuses at the edge.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing (400)
//   - ValueIsInvalidError: a value is malformed or violates a rule (400)
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds (400)
//   - ObjectNotFoundError: a referenced object does not exist (404)
//   - ForbiddenError: the actor's role does not permit the operation (403)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
