package consent

import (
	"github.com/develper21/ppdu/core"
	"github.com/develper21/ppdu/logging"
)

// BlockedReason is the verdict reason attached whenever a consent-requiring
// action is refused.
const BlockedReason = "User has not provided consent for this high-impact action."

// Gate authorizes or blocks candidate interventions based on subject-specific
// consent state. It is safe for concurrent use; per-subject serialization is
// the store's responsibility.
type Gate struct {
	store  core.ConsentStore
	logger logging.Logger
}

// GateOptions holds dependency overrides passed to NewGate.
type GateOptions struct {
	// Logger defaults to a NoOp logger if nil.
	Logger logging.Logger
}

// NewGate constructs a gate over the given consent store.
func NewGate(store core.ConsentStore, optFns ...func(o *GateOptions)) *Gate {
	opts := GateOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Gate{store: store, logger: opts.Logger}
}

// Validate returns the verdict for executing the decision on behalf of the
// subject.
//
// Decisions that do not require consent are always allowed without a lookup.
// Otherwise the subject id is looked up verbatim (no fuzzy matching): a
// present-and-true record allows; absent or false blocks. A store error also
// blocks — the gate fails closed.
func (g *Gate) Validate(subjectID string, decision core.Decision) core.ConsentVerdict {
	if !decision.RequiresConsent {
		return core.ConsentVerdict{Allowed: true}
	}

	granted, ok, err := g.store.Get(subjectID)
	if err != nil {
		g.logger.Error("consent lookup failed subject_id=%s action_id=%s: %v", subjectID, decision.ActionID, err)
		return core.ConsentVerdict{Allowed: false, Reason: BlockedReason}
	}

	if ok && granted {
		g.logger.Debug("consent verified subject_id=%s action_type=%s", subjectID, decision.ActionType)
		return core.ConsentVerdict{Allowed: true}
	}

	return core.ConsentVerdict{Allowed: false, Reason: BlockedReason}
}
