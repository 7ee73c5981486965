package authn

import (
	"fmt"
	"time"

	"github.com/quangdm/proctorgate/pkg/logging"
	"github.com/quangdm/proctorgate/pkg/session"
	"github.com/quangdm/proctorgate/pkg/users"
)

const (
	// MaxAttempts is the number of consecutive failures before lockout
	MaxAttempts = 5
	// LockoutWindow is how long login attempts are rejected after lockout
	LockoutWindow = 60 * time.Second
)

// CredentialSource is the subset of the user store the authenticator needs
type CredentialSource interface {
	FindByIdentity(identity string) (users.UserRecord, bool)
}

// Authenticator verifies submitted credentials against the store and tracks
// failed-attempt state on the session
type Authenticator struct {
	store  CredentialSource
	hasher Hasher
	now    func() time.Time
}

// NewAuthenticator creates a new Authenticator. A nil hasher defaults to
// SHA-256.
func NewAuthenticator(store CredentialSource, hasher Hasher) (*Authenticator, error) {
	if store == nil {
		return nil, fmt.Errorf("credential source is required")
	}
	if hasher == nil {
		hasher = NewSHA256Hasher()
	}
	return &Authenticator{
		store:  store,
		hasher: hasher,
		now:    time.Now,
	}, nil
}

// Login attempts to authenticate the session. On success the session is
// populated with identity, role and scope and the failure counter resets.
//
// While the session is locked the store is never consulted and no hashing
// happens, so the attempt cannot leak whether the identity exists.
func (a *Authenticator) Login(sess *session.Session, identity, secret string) error {
	now := a.now()
	if now.Before(sess.LockedUntil) {
		remaining := sess.LockedUntil.Sub(now)
		logging.Audit.LogAuth("login", identity, "locked", "remaining_s", int(remaining.Seconds()))
		return &LockedError{Remaining: remaining}
	}

	rec, found := a.store.FindByIdentity(identity)

	// Hash whenever a record was found, before deciding anything, so a
	// wrong secret and an unknown identity are not distinguishable by
	// whether hashing ran.
	match := false
	if found {
		match = a.hasher.Hash(secret) == rec.SecretHash
	}

	if match {
		sess.FailedAttempts = 0
		sess.Authenticated = true
		sess.Identity = rec.Identity
		sess.Role = rec.Role
		sess.Scope = rec.Scope
		logging.Audit.LogAuth("login", identity, "success", "role", rec.Role)
		return nil
	}

	sess.FailedAttempts++
	if sess.FailedAttempts >= MaxAttempts {
		sess.LockedUntil = now.Add(LockoutWindow)
		logging.Audit.LogAuth("login", identity, "locked_now", "attempts", sess.FailedAttempts)
		return &LockedError{Remaining: LockoutWindow}
	}

	remaining := MaxAttempts - sess.FailedAttempts
	logging.Audit.LogAuth("login", identity, "denied", "attempts_remaining", remaining)
	return &InvalidCredentialsError{AttemptsRemaining: remaining}
}

// Logout clears the session's identity and records the event. Lockout
// counters are a login-flow concept keyed to the session and survive this.
func (a *Authenticator) Logout(sess *session.Session) {
	if sess.Authenticated {
		logging.Audit.LogAuth("logout", sess.Identity, "success")
	}
	sess.Logout()
}
