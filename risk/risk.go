// Package risk converts context snapshots into risk evaluations. Scoring is
// an additive point system: each rule that fires adds its weight and appends
// a human readable factor label, in rule order, then the total is clamped to
// [0,100] and mapped to a safety level.
//
// Evaluation is a pure function of the snapshot. The "current time" concept
// is the snapshot's own location timestamp, never wall clock, so a given
// snapshot always produces the same score.
package risk

import (
	"time"

	"github.com/develper21/ppdu/core"
)

// Factor labels appended to evaluations, in rule order.
const (
	FactorLateNight      = "Late Night"
	FactorRunningAtNight = "Running at Night"
	FactorAudioAnomaly   = "Audio Anomaly Detected (Scream/Crash)"
	FactorRouteDeviation = "Significant Route Deviation"
)

// Config holds scoring weights, the night window and level thresholds.
//
// Thresholds are exclusive: a score exactly equal to EmergencyThreshold maps
// to HIGH_RISK, not EMERGENCY, and likewise for the lower tiers.
type Config struct {
	// NightStartHour/NightEndHour bound the late-night window (inclusive on
	// both ends, wrapping midnight): hour >= start or hour <= end.
	NightStartHour int
	NightEndHour   int

	// Additive weights per rule.
	LateNightWeight      int
	RunningAtNightWeight int
	AudioAnomalyWeight   int
	RouteDeviationWeight int

	// Level thresholds (exclusive lower bounds).
	EmergencyThreshold int
	HighRiskThreshold  int
	CautionThreshold   int
}

// DefaultConfig holds the production scoring constants.
var DefaultConfig = Config{
	NightStartHour:       22,
	NightEndHour:         5,
	LateNightWeight:      30,
	RunningAtNightWeight: 20,
	AudioAnomalyWeight:   50,
	RouteDeviationWeight: 40,
	EmergencyThreshold:   80,
	HighRiskThreshold:    50,
	CautionThreshold:     20,
}

// Scorer evaluates risk for context snapshots. It is stateless and safe for
// concurrent use.
type Scorer struct {
	config Config
}

// NewScorer constructs a Scorer with optional config overrides.
func NewScorer(optFns ...func(c *Config)) *Scorer {
	config := DefaultConfig
	for _, fn := range optFns {
		fn(&config)
	}
	return &Scorer{config: config}
}

// Evaluate scores one snapshot and returns an immutable evaluation. The
// evaluation's Timestamp is wall clock and exists for audit only; it plays
// no role in scoring.
func (s *Scorer) Evaluate(snapshot core.UserContext) core.RiskEvaluation {
	score := 0
	var factors []string

	// 1. Time based risk: late night window derived from the fix timestamp.
	hour := snapshot.Location.Timestamp.Hour()
	night := hour >= s.config.NightStartHour || hour <= s.config.NightEndHour
	if night {
		score += s.config.LateNightWeight
		factors = append(factors, FactorLateNight)
	}

	// 2. Activity based risk. Running by day and prolonged stationary
	// periods contribute nothing in this version; reserved for future rules.
	if snapshot.Activity == core.ActivityRunning && night {
		score += s.config.RunningAtNightWeight
		factors = append(factors, FactorRunningAtNight)
	}

	// 3. Audio anomaly reported by the client.
	if snapshot.AudioAnomalyDetected {
		score += s.config.AudioAnomalyWeight
		factors = append(factors, FactorAudioAnomaly)
	}

	// 4. Route deviation reported by the client.
	if snapshot.RouteDeviationDetected {
		score += s.config.RouteDeviationWeight
		factors = append(factors, FactorRouteDeviation)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return core.RiskEvaluation{
		Score:     score,
		Factors:   factors,
		Level:     s.levelFor(score),
		Timestamp: time.Now(),
	}
}

// levelFor maps a clamped score to its safety level. Boundary values map to
// the lower tier.
func (s *Scorer) levelFor(score int) core.SafetyLevel {
	switch {
	case score > s.config.EmergencyThreshold:
		return core.LevelEmergency
	case score > s.config.HighRiskThreshold:
		return core.LevelHighRisk
	case score > s.config.CautionThreshold:
		return core.LevelCaution
	default:
		return core.LevelSafe
	}
}
