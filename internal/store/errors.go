package store

import "fmt"

// ValidationError reports rejected user input. The collection is left
// untouched when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against an id that is no longer in
// the collection, e.g. the task was deleted from another view first.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// PersistenceError wraps a failed slot write. The in-memory collection is
// already mutated and stays correct; callers may surface or ignore it.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist tasks: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func errEmptyText() error {
	return &ValidationError{Field: "text", Reason: "must not be empty"}
}
