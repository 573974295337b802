package core

import "time"

// Activity categorizes the subject's current motion state as reported by the
// client's sensor fusion.
type Activity string

const (
	// ActivityStationary indicates the subject is not moving.
	ActivityStationary Activity = "STATIONARY"
	// ActivityWalking indicates walking-pace movement.
	ActivityWalking Activity = "WALKING"
	// ActivityRunning indicates running-pace movement.
	ActivityRunning Activity = "RUNNING"
	// ActivityInVehicle indicates vehicular movement.
	ActivityInVehicle Activity = "IN_VEHICLE"
	// ActivityUnknown is the default when the client reports nothing usable.
	ActivityUnknown Activity = "UNKNOWN"
)

// GeoLocation is a single position fix. Timestamp is the fix time as reported
// by the positioning source, not the ingestion time.
type GeoLocation struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// UserContext is the latest merged context snapshot for one subject. It is
// the unit of input for risk evaluation.
//
// Contract:
//   - SubjectID is never empty (the store substitutes the "unknown" sentinel)
//   - Location always carries a timestamp
//   - LastActive is refreshed on every merge
//
// Snapshots returned by a ContextStore are copies; mutating them has no
// effect on stored state.
type UserContext struct {
	SubjectID              string      `json:"subject_id"`
	Location               GeoLocation `json:"location"`
	Activity               Activity    `json:"activity"`
	BatteryLevel           *float64    `json:"battery_level,omitempty"`
	LastActive             time.Time   `json:"last_active"`
	AudioAnomalyDetected   bool        `json:"audio_anomaly_detected,omitempty"`
	RouteDeviationDetected bool        `json:"route_deviation_detected,omitempty"`
}

// ContextUpdate is a partial context report from the ingestion boundary. All
// fields are optional pointers so absence can be distinguished from zero
// values; absent fields retain their prior snapshot values on merge.
type ContextUpdate struct {
	Location               *GeoLocation `json:"location,omitempty"`
	Activity               *Activity    `json:"activity,omitempty"`
	BatteryLevel           *float64     `json:"battery_level,omitempty"`
	AudioAnomalyDetected   *bool        `json:"audio_anomaly_detected,omitempty"`
	RouteDeviationDetected *bool        `json:"route_deviation_detected,omitempty"`
}

// ContextStore owns the current snapshot per subject. Implementations must
// serialize reads and writes per subject key; no validation of geographic
// plausibility or update rate is performed at this layer.
type ContextStore interface {
	// Update merges a partial update over the subject's prior snapshot
	// (synthesizing one on first sight) and returns the merged result.
	// The returned snapshot is the sole downstream trigger for a pipeline
	// pass: exactly one pass per Update call.
	Update(subjectID string, update ContextUpdate) UserContext

	// Get returns a copy of the subject's current snapshot, if any.
	Get(subjectID string) (UserContext, bool)
}

// UnknownSubjectID is the sentinel substituted when an update arrives with no
// subject identifier.
const UnknownSubjectID = "unknown"
