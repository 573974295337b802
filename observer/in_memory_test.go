package observer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/develper21/ppdu/core"
)

// Interface compliance (compile-time assertion)
var _ core.ContextStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SynthesizesDefaultsOnFirstUpdate(t *testing.T) {
	store := NewInMemoryStore()

	snapshot := store.Update("", core.ContextUpdate{})

	assert.Equal(t, core.UnknownSubjectID, snapshot.SubjectID)
	assert.Equal(t, core.ActivityUnknown, snapshot.Activity)
	assert.False(t, snapshot.Location.Timestamp.IsZero(), "zero location must be stamped with current time")
	assert.False(t, snapshot.LastActive.IsZero())

	stored, ok := store.Get(core.UnknownSubjectID)
	require.True(t, ok)
	assert.Equal(t, snapshot, stored)
}

func TestInMemoryStore_MergeRetainsAbsentFields(t *testing.T) {
	store := NewInMemoryStore()

	loc := core.GeoLocation{Latitude: 40.7128, Longitude: -74.0060, Timestamp: time.Now()}
	walking := core.ActivityWalking
	battery := 0.8
	store.Update("subject-1", core.ContextUpdate{Location: &loc, Activity: &walking, BatteryLevel: &battery})

	// Second update only flips the audio flag; everything else must survive.
	anomaly := true
	merged := store.Update("subject-1", core.ContextUpdate{AudioAnomalyDetected: &anomaly})

	assert.Equal(t, loc, merged.Location)
	assert.Equal(t, core.ActivityWalking, merged.Activity)
	require.NotNil(t, merged.BatteryLevel)
	assert.Equal(t, 0.8, *merged.BatteryLevel)
	assert.True(t, merged.AudioAnomalyDetected)
	assert.False(t, merged.RouteDeviationDetected)
}

func TestInMemoryStore_LastActiveStrictlyIncreases(t *testing.T) {
	store := NewInMemoryStore()
	clock := time.Date(2023, 10, 27, 21, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	first := store.Update("subject-1", core.ContextUpdate{})
	second := store.Update("subject-1", core.ContextUpdate{})

	assert.True(t, second.LastActive.After(first.LastActive))
}

func TestInMemoryStore_GetMissingSubject(t *testing.T) {
	store := NewInMemoryStore()

	_, ok := store.Get("nobody")

	assert.False(t, ok)
}

func TestInMemoryStore_ReturnedSnapshotIsACopy(t *testing.T) {
	store := NewInMemoryStore()
	store.Update("subject-1", core.ContextUpdate{})

	snapshot, ok := store.Get("subject-1")
	require.True(t, ok)
	snapshot.SubjectID = "tampered"

	stored, _ := store.Get("subject-1")
	assert.Equal(t, "subject-1", stored.SubjectID)
}

func TestInMemoryStore_SnapshotsDoNotShareBatteryPointer(t *testing.T) {
	store := NewInMemoryStore()
	battery := 0.8

	returned := store.Update("subject-1", core.ContextUpdate{BatteryLevel: &battery})
	require.NotNil(t, returned.BatteryLevel)
	*returned.BatteryLevel = 0.1

	snapshot, ok := store.Get("subject-1")
	require.True(t, ok)
	require.NotNil(t, snapshot.BatteryLevel)
	assert.Equal(t, 0.8, *snapshot.BatteryLevel)

	*snapshot.BatteryLevel = 0.2
	again, _ := store.Get("subject-1")
	assert.Equal(t, 0.8, *again.BatteryLevel)
}
