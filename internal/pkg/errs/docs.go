// Package errs provides the standardized error types shared by every layer of the
// delivery backend.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing (e.g. receiver document)
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ObjectNotFoundError: an order, branch or user id matched nothing
//   - StateIsInvalidError: the order lifecycle does not allow the requested transition
//
// Each error type follows the same pattern: a sentinel variable, a struct with the
// details, constructors with and without cause, and an Unwrap method returning the
// sentinel so callers can classify failures with errors.Is.
package errs
