// Package errs provides the typed errors shared by the pizzeria domain and its adapters.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) returned by Unwrap,
//     so callers match with errors.Is
//   - a struct carrying the offending parameter and an optional Cause
//   - New... and New...WithCause constructors
//
// Available types:
//   - ObjectNotFoundError: a lookup by ID found nothing
//   - ValueIsInvalidError: a value broke a domain rule (e.g. an illegal status transition)
//   - ValueIsOutOfRangeError: a value fell outside an allowed range (e.g. an unknown pizza size)
//   - ValueIsRequiredError: a mandatory value was missing
package errs
