package core

// ConsentVerdict is the result of checking a decision against a subject's
// consent state. Reason is set only when the action is blocked.
type ConsentVerdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ConsentStore is the lookup boundary to the consent collaborator, keyed by
// exact subject id. Absence of a record means "no consent".
//
// Implementations must serialize reads and writes per subject key. Set and
// Revoke mirror the management surface of the external consent service; the
// pipeline itself only reads.
type ConsentStore interface {
	// Get returns the recorded consent flag and whether a record exists.
	Get(subjectID string) (granted bool, ok bool, err error)

	// Set records an explicit consent flag for the subject.
	Set(subjectID string, granted bool) error

	// Revoke removes the subject's consent record entirely.
	Revoke(subjectID string) error
}
