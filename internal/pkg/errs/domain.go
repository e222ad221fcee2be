package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lifecycle-engine error taxonomy.
// Every rejected operation surfaces one of these, never a generic failure.
var (
	// ErrTransitionNotAllowed is the wrap target of GuardError.
	ErrTransitionNotAllowed = errors.New("transition is not allowed")

	// ErrConflict is the wrap target of ConflictError.
	ErrConflict = errors.New("stored state changed since last observed")

	// ErrUnauthorized is the wrap target of AuthorizationError.
	ErrUnauthorized = errors.New("actor is not authorized")
)

// GuardError indicates that a requested transition is not permitted from the
// current state. It always carries the current status, the rejected action and
// the specific rule that blocked it, so the failure can be reported precisely
// rather than downgraded to a generic message.
type GuardError struct {
	Status string
	Action string
	Reason string
	Cause  error
}

// NewGuardError creates a GuardError for the given status, action and failed rule.
func NewGuardError(status, action, reason string) *GuardError {
	return &GuardError{Status: status, Action: action, Reason: reason}
}

// NewGuardErrorWithCause creates a GuardError additionally wrapping a specific
// guard sentinel, so callers can match the failed rule with errors.Is.
func NewGuardErrorWithCause(status, action, reason string, cause error) *GuardError {
	return &GuardError{Status: status, Action: action, Reason: reason, Cause: cause}
}

func (e *GuardError) Error() string {
	if e.Reason != "" {
		return sanitize(fmt.Sprintf("%s: cannot %s from status %q: %s",
			ErrTransitionNotAllowed, e.Action, e.Status, e.Reason))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s from status %q",
		ErrTransitionNotAllowed, e.Action, e.Status))
}

func (e *GuardError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrTransitionNotAllowed, e.Cause}
	}
	return []error{ErrTransitionNotAllowed}
}

// ConflictError indicates that a conditional write lost a race: the stored
// record no longer matches the version the writer last observed. The caller
// must re-fetch current state and re-present it to the actor instead of
// blindly retrying the original operation.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without an underlying cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AuthorizationError indicates that an actor attempted an operation reserved
// for a different role, or touched a record owned by another user. The
// operation is fatal and is never retried automatically.
type AuthorizationError struct {
	Actor     string
	Operation string
}

// NewAuthorizationError creates an AuthorizationError for the given actor and operation.
func NewAuthorizationError(actor, operation string) *AuthorizationError {
	return &AuthorizationError{Actor: actor, Operation: operation}
}

func (e *AuthorizationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Actor, e.Operation))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrUnauthorized
}
