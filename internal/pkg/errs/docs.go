// Package errs provides the standardized error types used across the
// dispatch application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying error details and an optional Cause
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Application and domain code return these types; the HTTP adapter maps them
// to response status codes (required/invalid values to 400, missing objects
// to 404).
package errs
