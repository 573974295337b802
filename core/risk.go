package core

import "time"

// SafetyLevel is the categorical risk tier derived from a numeric score.
type SafetyLevel string

const (
	// LevelSafe means the score is within safety limits; no action follows.
	LevelSafe SafetyLevel = "SAFE"
	// LevelCaution means unusual but non-critical context was observed.
	LevelCaution SafetyLevel = "CAUTION"
	// LevelHighRisk means multiple strong risk signals are present.
	LevelHighRisk SafetyLevel = "HIGH_RISK"
	// LevelEmergency means the score exceeded the critical threshold.
	LevelEmergency SafetyLevel = "EMERGENCY"
)

// RiskEvaluation is the immutable output of scoring one context snapshot.
//
// Factors preserve evaluation order (rule order in the scorer) and contain no
// duplicates by construction. Timestamp is wall clock and exists for audit
// only; scoring itself is derived from the snapshot's own location timestamp
// so an evaluation is reproducible for a given snapshot.
type RiskEvaluation struct {
	Score     int         `json:"score"` // clamped to [0,100]
	Factors   []string    `json:"factors"`
	Level     SafetyLevel `json:"level"`
	Timestamp time.Time   `json:"timestamp"`
}
