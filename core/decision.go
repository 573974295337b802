package core

import "github.com/google/uuid"

// ActionType enumerates the interventions the decision policy can propose.
type ActionType string

const (
	// ActionNone proposes no intervention.
	ActionNone ActionType = "NONE"
	// ActionPingUser sends a check-in notification to the subject.
	ActionPingUser ActionType = "PING_USER"
	// ActionShareLocation pushes the current location to trusted parties.
	ActionShareLocation ActionType = "SHARE_LOCATION"
	// ActionAlertContacts sends an SMS-equivalent alert to emergency contacts.
	ActionAlertContacts ActionType = "ALERT_CONTACTS"
	// ActionContactAuthorities escalates to the emergency-authority channel.
	ActionContactAuthorities ActionType = "CONTACT_AUTHORITIES"
)

// Decision is a candidate intervention produced once per risk evaluation.
// After construction it should be treated as immutable. ActionID is globally
// unique; no two decisions in the system share an id.
type Decision struct {
	ActionID        string         `json:"action_id"`
	ActionType      ActionType     `json:"action_type"`
	Reason          string         `json:"reason"`
	Priority        int            `json:"priority"` // 0-10
	RequiresConsent bool           `json:"requires_consent"`
	Payload         map[string]any `json:"payload,omitempty"`
}

// NewID generates a new unique identifier for decisions and pipeline passes.
func NewID() string { return uuid.NewString() }
