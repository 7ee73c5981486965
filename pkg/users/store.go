package users

import (
	"errors"
	"sync"

	"github.com/quangdm/proctorgate/pkg/logging"
)

// Store holds the authoritative in-memory record list on top of a Source.
// Readers run concurrently; mutations and saves are serialized. A failed
// save leaves the in-memory state authoritative.
type Store struct {
	source Source
	seed   []UserRecord

	mu      sync.RWMutex
	records []UserRecord

	// saveMu serializes writes to the source so at most one save is in
	// flight at a time
	saveMu sync.Mutex
}

// NewStore creates a Store and performs the initial load. Precedence:
// persisted source, then the seed list, then the built-in defaults.
func NewStore(source Source, seed []UserRecord) (*Store, error) {
	if source == nil {
		return nil, errors.New("user source is required")
	}
	s := &Store{
		source: source,
		seed:   append([]UserRecord(nil), seed...),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-runs the load precedence against the source. Used at startup
// and when the backing file changes externally.
func (s *Store) Reload() error {
	records, err := s.source.Load()
	switch {
	case err == nil:
	case errors.Is(err, ErrNoStore):
		if len(s.seed) > 0 {
			records = append([]UserRecord(nil), s.seed...)
			logging.App.WithField("users", len(records)).Info("no persisted store, using seed list")
		} else {
			records = DefaultRecords()
			logging.App.Info("no persisted store, using built-in defaults")
		}
	default:
		return err
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

// All returns a copy of every record
func (s *Store) All() []UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]UserRecord(nil), s.records...)
}

// FindByIdentity returns the record for an identity, if present
func (s *Store) FindByIdentity(identity string) (UserRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Identity == identity {
			return rec, true
		}
	}
	return UserRecord{}, false
}

// Add appends a new record. Identities are unique across the store.
func (s *Store) Add(rec UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.Identity == rec.Identity {
			return ErrDuplicateIdentity
		}
	}
	s.records = append(s.records, rec)
	return nil
}

// Update sets role and scope for an existing identity. An empty scope
// removes the restriction entirely.
func (s *Store) Update(identity string, role Role, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Identity == identity {
			s.records[i].Role = role
			s.records[i].Scope = scope
			return nil
		}
	}
	return ErrUserNotFound
}

// SetSecretHash replaces the stored hash for an existing identity
func (s *Store) SetSecretHash(identity, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Identity == identity {
			s.records[i].SecretHash = hash
			return nil
		}
	}
	return ErrUserNotFound
}

// Delete removes the record for an identity
func (s *Store) Delete(identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Identity == identity {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

// Admins returns how many admin records the store currently holds
func (s *Store) Admins() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.records {
		if rec.Role == RoleAdmin {
			n++
		}
	}
	return n
}

// Save persists the current record list. Writers are serialized; a snapshot
// is taken so readers are not blocked during the write.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	return s.source.Save(s.All())
}
