package users

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when an identity does not exist in the store
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateIdentity is returned when adding an identity that already exists
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrNoStore is returned by a Source when nothing has been persisted yet
	ErrNoStore = errors.New("no persisted user store")
)

// PersistenceError reports a failure to read or write the backing medium.
// Callers treat it as non-fatal: the in-memory state stays authoritative.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("user store %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
