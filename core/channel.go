package core

import "context"

// NotificationChannel delivers push-style notifications to the subject's own
// device. Used for PING_USER and SHARE_LOCATION interventions.
type NotificationChannel interface {
	Notify(ctx context.Context, subjectID, message string) error
}

// MessagingChannel delivers SMS-equivalent alerts to the subject's emergency
// contacts. Used for ALERT_CONTACTS interventions.
type MessagingChannel interface {
	SendAlert(ctx context.Context, subjectID, message string) error
}

// AuthorityChannel escalates to the external emergency-authority integration,
// including the subject's current location. Used for CONTACT_AUTHORITIES.
type AuthorityChannel interface {
	Call(ctx context.Context, subjectID, message string, location GeoLocation) error
}

// DispatchOutcome records the result of executing one decision. The pipeline
// treats dispatch as fire-and-forget: a failed outcome is logged, never
// retried and never propagated to the ingestion caller.
type DispatchOutcome struct {
	ActionID   string     `json:"action_id"`
	ActionType ActionType `json:"action_type"`
	Dispatched bool       `json:"dispatched"` // false for no-ops and blocked channels
	Err        error      `json:"-"`
}
