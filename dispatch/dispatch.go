// Package dispatch executes authorized interventions against the external
// notification, messaging and emergency-authority channels. Dispatch is
// fire-and-forget from the pipeline's perspective: channel failures are
// logged, never retried, and never propagated to the ingestion caller.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/develper21/ppdu/core"
	"github.com/develper21/ppdu/logging"
)

// Messages sent through the external channels.
const (
	PingMessage  = "Are you okay? We detected some unusual activity."
	AlertMessage = "Emergency Contact Alert: User might be in danger."
)

// DefaultTimeout bounds each external channel call.
const DefaultTimeout = 3 * time.Second

// Options holds dependency and configuration overrides passed to New().
type Options struct {
	// Timeout bounds each channel call. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Logger defaults to a NoOp logger if nil.
	Logger logging.Logger
}

// Dispatcher routes decisions to the appropriate external channel. Channel
// calls carry their own timeout; each is an independent external effect. The
// dispatcher is stateless and safe for concurrent use.
type Dispatcher struct {
	notifier  core.NotificationChannel
	messenger core.MessagingChannel
	authority core.AuthorityChannel
	timeout   time.Duration
	logger    logging.Logger
}

// New constructs a Dispatcher over the three external channels.
func New(
	notifier core.NotificationChannel,
	messenger core.MessagingChannel,
	authority core.AuthorityChannel,
	optFns ...func(o *Options),
) *Dispatcher {
	opts := Options{Timeout: DefaultTimeout, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Dispatcher{
		notifier:  notifier,
		messenger: messenger,
		authority: authority,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
	}
}

// Execute carries out the decision against the matching channel and returns
// the outcome. NONE returns immediately. Unknown action types are logged and
// treated as no-ops; they must never crash the pipeline.
func (d *Dispatcher) Execute(ctx context.Context, decision core.Decision, snapshot core.UserContext) core.DispatchOutcome {
	outcome := core.DispatchOutcome{ActionID: decision.ActionID, ActionType: decision.ActionType}

	if decision.ActionType == core.ActionNone {
		return outcome
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()

	var err error
	switch decision.ActionType {
	case core.ActionPingUser:
		err = d.notifier.Notify(ctx, snapshot.SubjectID, PingMessage)

	case core.ActionShareLocation:
		message := fmt.Sprintf("Location shared: %.4f, %.4f", snapshot.Location.Latitude, snapshot.Location.Longitude)
		err = d.notifier.Notify(ctx, snapshot.SubjectID, message)

	case core.ActionAlertContacts:
		err = d.messenger.SendAlert(ctx, snapshot.SubjectID, AlertMessage)

	case core.ActionContactAuthorities:
		err = d.authority.Call(ctx, snapshot.SubjectID, decision.Reason, snapshot.Location)

	default:
		d.logger.Warn("unknown action type %s; ignoring action_id=%s", decision.ActionType, decision.ActionID)
		return outcome
	}

	outcome.Dispatched = err == nil
	outcome.Err = err

	if err != nil {
		// Known gap: no retry, no backoff, no dead-letter queue.
		d.logger.Error("dispatch failed action_id=%s action_type=%s duration=%s: %v",
			decision.ActionID, decision.ActionType, time.Since(start), err)
	} else {
		d.logger.Info("dispatched action_id=%s action_type=%s priority=%d duration=%s",
			decision.ActionID, decision.ActionType, decision.Priority, time.Since(start))
	}

	return outcome
}
