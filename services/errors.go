package services

import "fmt"

// ValidationError reports malformed or missing caller input: an empty claim
// message, a found item posted without an image, an owner claiming their
// own item.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that a referenced entity does not exist. The chat
// service also returns it for requests that exist but were never accepted,
// so that probing a request id reveals nothing about its status.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// AuthorizationError reports that the caller lacks the required
// relationship to the entity (not the owner, not a chat party).
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

// ClosedError reports an operation blocked because the item has already
// been returned.
type ClosedError struct {
	Msg string
}

func (e *ClosedError) Error() string { return e.Msg }

// InvalidStateError reports a transition attempted from a terminal state,
// such as deciding a request that has already been accepted or rejected.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string { return e.Msg }

// DependencyError wraps a failure in an external collaborator (database,
// blob store). It is never converted into success.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *DependencyError) Unwrap() error { return e.Err }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func dependency(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}
