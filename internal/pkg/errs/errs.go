package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for each failure kind. Callers classify failures with
// errors.Is against these values instead of matching message text.
var (
	// ErrValueIsRequired indicates a required value was not provided.
	ErrValueIsRequired = fmt.Errorf("value is required")

	// ErrValueIsInvalid indicates a value is outside the recognized set.
	ErrValueIsInvalid = fmt.Errorf("value is invalid")

	// ErrObjectNotFound indicates a referenced object does not exist
	// or is invisible to the current operation.
	ErrObjectNotFound = fmt.Errorf("object not found")

	// ErrPermissionDenied indicates the actor lacks authority over the target.
	ErrPermissionDenied = fmt.Errorf("permission denied")

	// ErrInvalidTransition indicates a status change not permitted from the
	// current state for the invoking role.
	ErrInvalidTransition = fmt.Errorf("invalid status transition")

	// ErrValidationFailed indicates a structural field check rejected the object.
	ErrValidationFailed = fmt.Errorf("validation failed")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value fails domain validation,
// including status values outside the recognized set.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError is returned when a referenced account, agent or order
// cannot be resolved. ParamName names the reference, ID carries its value.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named reference.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// PermissionDeniedError is returned when the acting party has no authority
// over the target object, distinct from the object not existing.
type PermissionDeniedError struct {
	ActorName string
	ObjectID  any
}

// NewPermissionDeniedError creates a PermissionDeniedError for the named actor.
func NewPermissionDeniedError(actorName string, objectID any) *PermissionDeniedError {
	return &PermissionDeniedError{ActorName: actorName, ObjectID: objectID}
}

func (e *PermissionDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s has no authority over %v", ErrPermissionDenied, e.ActorName, e.ObjectID))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// InvalidTransitionError is returned when a status change is not in the
// transition table of the invoking role.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected pair.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s->%s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationFailedError is returned when a structural completeness check
// rejects an object before persistence.
type ValidationFailedError struct {
	Message string
}

// NewValidationFailedError creates a ValidationFailedError with the check's message.
func NewValidationFailedError(message string) *ValidationFailedError {
	return &ValidationFailedError{Message: message}
}

func (e *ValidationFailedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrValidationFailed, e.Message))
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}
