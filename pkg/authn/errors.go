package authn

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCredentials is returned when the identity or secret is wrong
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLocked is returned while the session's lockout window is active
	ErrLocked = errors.New("login locked")
)

// InvalidCredentialsError carries how many attempts remain before lockout.
// errors.Is(err, ErrInvalidCredentials) matches it.
type InvalidCredentialsError struct {
	AttemptsRemaining int
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials (%d attempts remaining)", e.AttemptsRemaining)
}

func (e *InvalidCredentialsError) Unwrap() error {
	return ErrInvalidCredentials
}

// LockedError carries how long the lockout window has left.
// errors.Is(err, ErrLocked) matches it.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("login locked for %ds", int(e.Remaining.Seconds()))
}

func (e *LockedError) Unwrap() error {
	return ErrLocked
}
