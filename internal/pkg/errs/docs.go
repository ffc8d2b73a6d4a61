// Package errs provides standardized error types for the LogiTrack platform.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// Domain-specific failures (invalid status transitions, access denials, payment
// declines) are defined as sentinels next to the code that raises them; this
// package only covers the generic input/lookup error vocabulary.
package errs
