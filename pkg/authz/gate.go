// Package authz decides, per request, whether a session may perform an
// operation and which slice of the exam data it may see. Decisions are
// never cached: every gated call re-reads the session.
package authz

import (
	"errors"

	"github.com/quangdm/proctorgate/pkg/session"
	"github.com/quangdm/proctorgate/pkg/users"
)

var (
	// ErrNotAuthenticated is returned for sessions that never logged in
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInsufficientRole is returned when the session's role is not in
	// the required set
	ErrInsufficientRole = errors.New("insufficient role")
)

// Authorize decides allow/deny for a session against a required role set.
// It is a pure function of its inputs and must be called before every
// gated operation.
func Authorize(sess *session.Session, required ...users.Role) error {
	if sess == nil || !sess.Authenticated {
		return ErrNotAuthenticated
	}
	for _, role := range required {
		if sess.Role == role {
			return nil
		}
	}
	return ErrInsufficientRole
}
