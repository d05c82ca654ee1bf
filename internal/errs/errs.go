// Package errs define custom error types and utilities.
//
// Its purpose is to give every failure category of a form submission
// a concrete type, so callers can tell them apart with errors.As and
// the client receives consistent error messages.
//
//   - FieldErrors: per-field validation messages, surfaced in the response.
//   - DecodeError: a body that could not be decoded, logged and degraded.
//   - DispatchError: a notification provider failure, logged only.
//   - HTTPError: routing-level failures of the local HTTP server.
package errs
