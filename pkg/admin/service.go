// Package admin implements the user-management operations. Every operation
// authorizes the acting session first and validates before mutating, so a
// denied or invalid request has no side effect.
package admin

import (
	"errors"

	"github.com/quangdm/proctorgate/pkg/authn"
	"github.com/quangdm/proctorgate/pkg/authz"
	"github.com/quangdm/proctorgate/pkg/logging"
	"github.com/quangdm/proctorgate/pkg/session"
	"github.com/quangdm/proctorgate/pkg/users"
)

var (
	// ErrMissingField is returned when a required field is empty
	ErrMissingField = errors.New("missing required field")

	// ErrSelfDeletion is returned when an admin tries to delete their own account
	ErrSelfDeletion = errors.New("cannot delete own account")
)

// Service runs gated mutations against the user store
type Service struct {
	store  *users.Store
	hasher authn.Hasher
}

// NewService creates a new Service. A nil hasher defaults to SHA-256.
func NewService(store *users.Store, hasher authn.Hasher) (*Service, error) {
	if store == nil {
		return nil, errors.New("user store is required")
	}
	if hasher == nil {
		hasher = authn.NewSHA256Hasher()
	}
	return &Service{
		store:  store,
		hasher: hasher,
	}, nil
}

// ListUsers returns every record, admin only
func (s *Service) ListUsers(sess *session.Session) ([]users.UserRecord, error) {
	if err := authz.Authorize(sess, users.RoleAdmin); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

// AddUser creates a new record. Fails on empty identity or secret and on
// duplicate identities.
func (s *Service) AddUser(sess *session.Session, identity, secret string, role users.Role, scope string) error {
	if err := authz.Authorize(sess, users.RoleAdmin); err != nil {
		return err
	}
	if identity == "" || secret == "" {
		return ErrMissingField
	}
	if !role.Valid() {
		return errors.New("unknown role")
	}

	err := s.store.Add(users.UserRecord{
		Identity:   identity,
		SecretHash: s.hasher.Hash(secret),
		Role:       role,
		Scope:      scope,
	})
	if err != nil {
		logging.Audit.LogAdmin("user_add", sess.Identity, "denied", "target", identity, "reason", err)
		return err
	}

	logging.Audit.LogAdmin("user_add", sess.Identity, "success", "target", identity, "role", role)
	s.persist()
	return nil
}

// UpdateUser sets role and scope for an existing record. An empty scope
// removes the restriction rather than storing an empty string.
func (s *Service) UpdateUser(sess *session.Session, identity string, role users.Role, scope string) error {
	if err := authz.Authorize(sess, users.RoleAdmin); err != nil {
		return err
	}
	if !role.Valid() {
		return errors.New("unknown role")
	}

	if err := s.store.Update(identity, role, scope); err != nil {
		return err
	}

	logging.Audit.LogAdmin("user_update", sess.Identity, "success", "target", identity, "role", role, "scope", scope)
	s.persist()
	return nil
}

// ResetPassword replaces the stored hash for an existing record
func (s *Service) ResetPassword(sess *session.Session, identity, newSecret string) error {
	if err := authz.Authorize(sess, users.RoleAdmin); err != nil {
		return err
	}
	if newSecret == "" {
		return ErrMissingField
	}

	if err := s.store.SetSecretHash(identity, s.hasher.Hash(newSecret)); err != nil {
		return err
	}

	logging.Audit.LogAdmin("password_reset", sess.Identity, "success", "target", identity)
	s.persist()
	return nil
}

// DeleteUser removes a record. The acting admin cannot delete themselves.
func (s *Service) DeleteUser(sess *session.Session, identity string) error {
	if err := authz.Authorize(sess, users.RoleAdmin); err != nil {
		return err
	}
	if identity == sess.Identity {
		return ErrSelfDeletion
	}

	if err := s.store.Delete(identity); err != nil {
		return err
	}

	logging.Audit.LogAdmin("user_delete", sess.Identity, "success", "target", identity)
	s.persist()
	return nil
}

// persist saves the store after a mutation. A persistence failure is
// downgraded to a warning: the operator keeps working against the
// in-memory state even when durability is uncertain.
func (s *Service) persist() {
	if err := s.store.Save(); err != nil {
		logging.App.WithError(err).Warn("user store not persisted, in-memory state kept")
	}
	if s.store.Admins() == 0 {
		logging.App.Warn("user store has no admin accounts left")
	}
}
