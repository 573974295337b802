package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/develper21/ppdu/core"
)

func TestMakeDecision_LevelMapping(t *testing.T) {
	engine := NewEngine()
	factors := []string{"Late Night", "Audio Anomaly Detected (Scream/Crash)"}

	tests := []struct {
		name            string
		level           core.SafetyLevel
		actionType      core.ActionType
		priority        int
		requiresConsent bool
		reason          string
	}{
		{
			name:            "emergency contacts authorities",
			level:           core.LevelEmergency,
			actionType:      core.ActionContactAuthorities,
			priority:        10,
			requiresConsent: true,
			reason:          "Critical risk detected: Late Night, Audio Anomaly Detected (Scream/Crash)",
		},
		{
			name:            "high risk alerts contacts",
			level:           core.LevelHighRisk,
			actionType:      core.ActionAlertContacts,
			priority:        8,
			requiresConsent: true,
			reason:          "High risk detected: Late Night, Audio Anomaly Detected (Scream/Crash)",
		},
		{
			name:       "caution pings user",
			level:      core.LevelCaution,
			actionType: core.ActionPingUser,
			priority:   5,
			reason:     ReasonCaution,
		},
		{
			name:       "safe does nothing",
			level:      core.LevelSafe,
			actionType: core.ActionNone,
			priority:   0,
			reason:     ReasonSafe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.MakeDecision(core.RiskEvaluation{Level: tt.level, Factors: factors})

			assert.Equal(t, tt.actionType, decision.ActionType)
			assert.Equal(t, tt.priority, decision.Priority)
			assert.Equal(t, tt.requiresConsent, decision.RequiresConsent)
			assert.Equal(t, tt.reason, decision.Reason)
			assert.NotEmpty(t, decision.ActionID)
		})
	}
}

func TestMakeDecision_UnknownLevelFallsBackToSafe(t *testing.T) {
	engine := NewEngine()

	decision := engine.MakeDecision(core.RiskEvaluation{Level: core.SafetyLevel("BOGUS")})

	assert.Equal(t, core.ActionNone, decision.ActionType)
	assert.Equal(t, ReasonSafe, decision.Reason)
	assert.False(t, decision.RequiresConsent)
}

func TestMakeDecision_IdenticalInputOnlyActionIDVaries(t *testing.T) {
	engine := NewEngine()
	eval := core.RiskEvaluation{Level: core.LevelHighRisk, Factors: []string{"Late Night"}}

	first := engine.MakeDecision(eval)
	second := engine.MakeDecision(eval)

	assert.NotEqual(t, first.ActionID, second.ActionID)

	first.ActionID, second.ActionID = "", ""
	assert.Equal(t, first, second)
}
