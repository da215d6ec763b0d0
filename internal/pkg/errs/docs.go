// Package errs provides the standardized error types used throughout the
// application. Each error type follows the same pattern: a sentinel variable
// for classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, and Error/Unwrap methods.
//
// Validation failures are represented by ValueIsRequiredError,
// ValueIsInvalidError and ValueIsOutOfRangeError. Missing entities map to
// ObjectNotFoundError. The two remaining types carry the outcomes that the
// delivery coordination flow must distinguish for its callers:
// PermissionDeniedError (a normal deny decision of the access guard, never
// retried) and VersionConflictError (a conditional write lost a concurrent
// race and may be retried after re-reading).
package errs
