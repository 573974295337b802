package consent

import (
	"sync"

	"github.com/develper21/ppdu/core"
)

// InMemoryStore is a volatile ConsentStore implementation backed by a process
// local map guarded by an RWMutex. Best suited for tests and single-process
// prototypes; production deployments should wire the sqlite sub-package or a
// store backed by the external consent service.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]bool
}

// NewInMemoryStore constructs an in-memory consent store, optionally seeded
// with subjects that have already granted consent.
func NewInMemoryStore(granted ...string) *InMemoryStore {
	records := make(map[string]bool, len(granted))
	for _, subjectID := range granted {
		records[subjectID] = true
	}
	return &InMemoryStore{records: records}
}

// Get returns the recorded consent flag and whether a record exists.
func (s *InMemoryStore) Get(subjectID string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	granted, ok := s.records[subjectID]
	return granted, ok, nil
}

// Set records an explicit consent flag for the subject.
func (s *InMemoryStore) Set(subjectID string, granted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[subjectID] = granted
	return nil
}

// Revoke removes the subject's consent record entirely.
func (s *InMemoryStore) Revoke(subjectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, subjectID)
	return nil
}

// Interface compliance (compile-time assertion)
var _ core.ConsentStore = (*InMemoryStore)(nil)
