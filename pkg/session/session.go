// Package session holds the per-session identity state consulted by every
// access decision. A Session carries no business logic of its own: the
// authenticator mutates it on login, the gate only reads it.
package session

import (
	"time"

	"github.com/quangdm/proctorgate/pkg/users"
)

// Session is the identity context for one active session. Identity, Role
// and Scope are only meaningful while Authenticated is true.
//
// FailedAttempts and LockedUntil belong to the login flow of this session,
// not to any particular identity, and deliberately survive Logout.
type Session struct {
	ID string

	Authenticated bool
	Identity      string
	Role          users.Role
	Scope         string

	FailedAttempts int
	LockedUntil    time.Time
}

// Logout clears the authenticated identity. Lockout state is left intact.
func (s *Session) Logout() {
	s.Authenticated = false
	s.Identity = ""
	s.Role = ""
	s.Scope = ""
}
