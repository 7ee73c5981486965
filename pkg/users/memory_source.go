package users

import "sync"

// MemorySource implements Source in memory
type MemorySource struct {
	mu      sync.RWMutex
	records []UserRecord
	seeded  bool
}

// NewMemorySource creates a new MemorySource with optional initial records.
// A nil initial list means nothing has been persisted yet.
func NewMemorySource(initial []UserRecord) *MemorySource {
	s := &MemorySource{}
	if initial != nil {
		s.records = append([]UserRecord(nil), initial...)
		s.seeded = true
	}
	return s
}

// Load implements Source
func (s *MemorySource) Load() ([]UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.seeded {
		return nil, ErrNoStore
	}
	return append([]UserRecord(nil), s.records...), nil
}

// Save implements Source
func (s *MemorySource) Save(records []UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]UserRecord(nil), records...)
	s.seeded = true
	return nil
}
