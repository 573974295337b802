package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/develper21/ppdu/core"
)

func snapshotAt(hour int, activity core.Activity) core.UserContext {
	return core.UserContext{
		SubjectID: "subject-1",
		Location: core.GeoLocation{
			Latitude:  40.7128,
			Longitude: -74.0060,
			Timestamp: time.Date(2023, 10, 27, hour, 30, 0, 0, time.UTC),
		},
		Activity:   activity,
		LastActive: time.Now(),
	}
}

func TestScorer_DaytimeWalkIsSafe(t *testing.T) {
	scorer := NewScorer()

	eval := scorer.Evaluate(snapshotAt(21, core.ActivityWalking))

	assert.Equal(t, 0, eval.Score)
	assert.Equal(t, core.LevelSafe, eval.Level)
	assert.Empty(t, eval.Factors)
}

func TestScorer_LateNightWalkIsCaution(t *testing.T) {
	scorer := NewScorer()

	eval := scorer.Evaluate(snapshotAt(23, core.ActivityWalking))

	assert.Equal(t, 30, eval.Score)
	assert.Equal(t, core.LevelCaution, eval.Level)
	assert.Equal(t, []string{FactorLateNight}, eval.Factors)
}

func TestScorer_EarlyMorningCountsAsNight(t *testing.T) {
	scorer := NewScorer()

	eval := scorer.Evaluate(snapshotAt(5, core.ActivityWalking))

	assert.Equal(t, 30, eval.Score)
}

func TestScorer_RunningContributesOnlyAtNight(t *testing.T) {
	scorer := NewScorer()

	day := scorer.Evaluate(snapshotAt(14, core.ActivityRunning))
	night := scorer.Evaluate(snapshotAt(23, core.ActivityRunning))

	assert.Equal(t, 0, day.Score)
	assert.Equal(t, 50, night.Score)
	assert.Equal(t, []string{FactorLateNight, FactorRunningAtNight}, night.Factors)
}

func TestScorer_AllFactorsClampTo100(t *testing.T) {
	scorer := NewScorer()

	snapshot := snapshotAt(23, core.ActivityRunning)
	snapshot.AudioAnomalyDetected = true
	snapshot.RouteDeviationDetected = true

	eval := scorer.Evaluate(snapshot)

	// 30 + 20 + 50 + 40 = 140, clamped.
	assert.Equal(t, 100, eval.Score)
	assert.Equal(t, core.LevelEmergency, eval.Level)
	assert.Equal(t, []string{
		FactorLateNight,
		FactorRunningAtNight,
		FactorAudioAnomaly,
		FactorRouteDeviation,
	}, eval.Factors)
}

func TestScorer_ScoreIsMonotonicInRiskFlags(t *testing.T) {
	scorer := NewScorer()

	base := snapshotAt(23, core.ActivityWalking)
	withAudio := base
	withAudio.AudioAnomalyDetected = true
	withBoth := withAudio
	withBoth.RouteDeviationDetected = true

	assert.LessOrEqual(t, scorer.Evaluate(base).Score, scorer.Evaluate(withAudio).Score)
	assert.LessOrEqual(t, scorer.Evaluate(withAudio).Score, scorer.Evaluate(withBoth).Score)
}

func TestScorer_ThresholdsAreExclusive(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		score int
		level core.SafetyLevel
	}{
		{0, core.LevelSafe},
		{20, core.LevelSafe},
		{21, core.LevelCaution},
		{50, core.LevelCaution},
		{51, core.LevelHighRisk},
		{80, core.LevelHighRisk},
		{81, core.LevelEmergency},
		{100, core.LevelEmergency},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, scorer.levelFor(tt.score), "score %d", tt.score)
	}
}

func TestScorer_EvaluationIsReproducible(t *testing.T) {
	scorer := NewScorer()
	snapshot := snapshotAt(23, core.ActivityRunning)

	first := scorer.Evaluate(snapshot)
	second := scorer.Evaluate(snapshot)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Level, second.Level)
	assert.Equal(t, first.Factors, second.Factors)
}

func TestScorer_ConfigOverrides(t *testing.T) {
	scorer := NewScorer(func(c *Config) {
		c.AudioAnomalyWeight = 90
	})

	snapshot := snapshotAt(14, core.ActivityWalking)
	snapshot.AudioAnomalyDetected = true

	eval := scorer.Evaluate(snapshot)

	assert.Equal(t, 90, eval.Score)
	assert.Equal(t, core.LevelEmergency, eval.Level)
}
