package authz

import "github.com/quangdm/proctorgate/pkg/session"

// ScopePredicate reports whether a record belonging to an exam is visible
type ScopePredicate func(examID string) bool

// ScopeFilter computes the data-visibility predicate for a session. An
// absent scope admits every record; otherwise only records of the scoped
// exam are admitted. The session is read at call time, so a re-login with
// a different scope takes effect on the next request.
func ScopeFilter(sess *session.Session) ScopePredicate {
	if sess == nil || sess.Scope == "" {
		return func(string) bool { return true }
	}
	scope := sess.Scope
	return func(examID string) bool { return examID == scope }
}
