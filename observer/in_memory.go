package observer

import (
	"sync"
	"time"

	"github.com/develper21/ppdu/core"
)

// InMemoryStore is a volatile ContextStore implementation keeping the latest
// snapshot per subject in a process local map. It is safe for concurrent
// access; reads and writes for a subject are serialized by the store mutex.
// Snapshots are returned by value so callers can never mutate stored state.
//
// Snapshots live for the process lifetime; subjects are never evicted.
type InMemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]core.UserContext

	// now is swappable for tests.
	now func() time.Time
}

// NewInMemoryStore constructs an empty in-memory context store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{snapshots: make(map[string]core.UserContext), now: time.Now}
}

// Update merges a partial update over the subject's prior snapshot and
// returns the merged result.
//
// If no prior snapshot exists one is synthesized first: the caller-supplied
// subject id (or the "unknown" sentinel), a zero location stamped now when
// the update carries none, and activity UNKNOWN. The partial update is then
// applied as a field-wise override and LastActive is unconditionally
// refreshed. No plausibility or rate checks happen here; downstream stages
// must tolerate noisy input.
func (s *InMemoryStore) Update(subjectID string, update core.ContextUpdate) core.UserContext {
	if subjectID == "" {
		subjectID = core.UnknownSubjectID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	snapshot, ok := s.snapshots[subjectID]
	if !ok {
		snapshot = core.UserContext{
			SubjectID: subjectID,
			Location:  core.GeoLocation{Timestamp: now},
			Activity:  core.ActivityUnknown,
		}
	}

	if update.Location != nil {
		snapshot.Location = *update.Location
	}
	if update.Activity != nil {
		snapshot.Activity = *update.Activity
	}
	if update.BatteryLevel != nil {
		level := *update.BatteryLevel
		snapshot.BatteryLevel = &level
	}
	if update.AudioAnomalyDetected != nil {
		snapshot.AudioAnomalyDetected = *update.AudioAnomalyDetected
	}
	if update.RouteDeviationDetected != nil {
		snapshot.RouteDeviationDetected = *update.RouteDeviationDetected
	}
	snapshot.LastActive = now

	s.snapshots[subjectID] = snapshot

	return copySnapshot(snapshot)
}

// Get returns a copy of the subject's current snapshot, if any.
func (s *InMemoryStore) Get(subjectID string) (core.UserContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[subjectID]
	return copySnapshot(snapshot), ok
}

// copySnapshot clones pointer fields so returned snapshots never alias
// stored state.
func copySnapshot(snapshot core.UserContext) core.UserContext {
	if snapshot.BatteryLevel != nil {
		level := *snapshot.BatteryLevel
		snapshot.BatteryLevel = &level
	}
	return snapshot
}
