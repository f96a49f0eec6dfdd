package domain

import (
	"errors"
	"fmt"
)

// ErrCollectionNotFound reports that no collection has been persisted for a
// user yet. Callers treat it as "first use", not as a failure.
var ErrCollectionNotFound = errors.New("collection not found")

// ErrSessionNotFound reports that no user is logged in.
var ErrSessionNotFound = errors.New("no active session")

// ValidationError rejects an operation locally; the collection is left
// untouched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an update addressed to a task id that is not in the
// collection. Deletes never raise it.
type NotFoundError struct {
	TaskID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.TaskID)
}

// InvalidEmailError and DuplicateCollaboratorError are distinct so the
// caller can show a precise message for each.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("%q is not a valid email address", e.Email)
}

type DuplicateCollaboratorError struct {
	Email string
}

func (e *DuplicateCollaboratorError) Error() string {
	return fmt.Sprintf("task is already shared with %s", e.Email)
}

// DeserializationError surfaces a malformed persisted payload. It is never
// swallowed by reseeding; the caller decides what to do with the data.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("malformed payload for %s: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
