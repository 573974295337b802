// Package policy maps risk evaluations to candidate interventions. The
// mapping is a pure total function of the safety level; only the action id
// varies between calls.
package policy

import (
	"fmt"
	"strings"

	"github.com/develper21/ppdu/core"
)

// Reason strings for levels that do not embed factors.
const (
	ReasonSafe    = "Risk is within safety limits."
	ReasonCaution = "Unusual activity or context detected."
)

// Engine produces decisions from risk evaluations. It is stateless and safe
// for concurrent use.
type Engine struct{}

// NewEngine constructs a decision engine.
func NewEngine() *Engine { return &Engine{} }

// MakeDecision maps an evaluation to a candidate intervention with a fresh
// globally unique action id.
//
// EMERGENCY deliberately keeps RequiresConsent true: severity does not bypass
// the consent gate. Changing that is a policy revision, not an implementation
// detail.
func (e *Engine) MakeDecision(eval core.RiskEvaluation) core.Decision {
	decision := core.Decision{
		ActionID:   core.NewID(),
		ActionType: core.ActionNone,
		Reason:     ReasonSafe,
	}

	switch eval.Level {
	case core.LevelEmergency:
		decision.ActionType = core.ActionContactAuthorities
		decision.Reason = fmt.Sprintf("Critical risk detected: %s", strings.Join(eval.Factors, ", "))
		decision.Priority = 10
		decision.RequiresConsent = true

	case core.LevelHighRisk:
		decision.ActionType = core.ActionAlertContacts
		decision.Reason = fmt.Sprintf("High risk detected: %s", strings.Join(eval.Factors, ", "))
		decision.Priority = 8
		decision.RequiresConsent = true

	case core.LevelCaution:
		decision.ActionType = core.ActionPingUser
		decision.Reason = ReasonCaution
		decision.Priority = 5

	case core.LevelSafe:
		// No action.
	}

	return decision
}
