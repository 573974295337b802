package consent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/develper21/ppdu/core"
)

type failingStore struct{}

func (failingStore) Get(string) (bool, bool, error) { return false, false, errors.New("boom") }
func (failingStore) Set(string, bool) error         { return nil }
func (failingStore) Revoke(string) error            { return nil }

func TestGate_NoConsentRequiredAlwaysAllowed(t *testing.T) {
	// Empty store: even a subject with no records passes consent-free actions.
	gate := NewGate(NewInMemoryStore())

	verdict := gate.Validate("stranger", core.Decision{ActionType: core.ActionPingUser})

	assert.True(t, verdict.Allowed)
	assert.Empty(t, verdict.Reason)
}

func TestGate_GrantedConsentAllows(t *testing.T) {
	gate := NewGate(NewInMemoryStore("subject-1"))

	verdict := gate.Validate("subject-1", core.Decision{
		ActionType:      core.ActionContactAuthorities,
		RequiresConsent: true,
	})

	assert.True(t, verdict.Allowed)
}

func TestGate_MissingRecordBlocks(t *testing.T) {
	gate := NewGate(NewInMemoryStore("subject-1"))

	verdict := gate.Validate("subject-2", core.Decision{
		ActionType:      core.ActionAlertContacts,
		RequiresConsent: true,
	})

	assert.False(t, verdict.Allowed)
	assert.Equal(t, BlockedReason, verdict.Reason)
}

func TestGate_ExplicitFalseRecordBlocks(t *testing.T) {
	store := NewInMemoryStore()
	assert.NoError(t, store.Set("subject-1", false))
	gate := NewGate(store)

	verdict := gate.Validate("subject-1", core.Decision{RequiresConsent: true})

	assert.False(t, verdict.Allowed)
	assert.Equal(t, BlockedReason, verdict.Reason)
}

func TestGate_ExactSubjectMatchOnly(t *testing.T) {
	gate := NewGate(NewInMemoryStore("subject-1"))

	verdict := gate.Validate("SUBJECT-1", core.Decision{RequiresConsent: true})

	assert.False(t, verdict.Allowed)
}

func TestGate_StoreErrorFailsClosed(t *testing.T) {
	gate := NewGate(failingStore{})

	verdict := gate.Validate("subject-1", core.Decision{RequiresConsent: true})

	assert.False(t, verdict.Allowed)
	assert.Equal(t, BlockedReason, verdict.Reason)
}

func TestInMemoryStore_RevokeRemovesRecord(t *testing.T) {
	store := NewInMemoryStore("subject-1")

	assert.NoError(t, store.Revoke("subject-1"))

	_, ok, err := store.Get("subject-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}
