// Package ppdu provides a high-level façade over the safety pipeline and its
// service abstractions (context store, consent store, channels & logging)
// enabling rapid construction of a personal-safety monitoring agent. Most
// applications interact with this package by:
//  1. Creating an Agent via New() (optionally overriding default in-memory services)
//  2. Granting consent for subjects that opted into high-impact interventions
//  3. Feeding partial context updates through Ingest()
//
// The façade delegates orchestration to pipeline.Pipeline while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a durable consent
// store, webhook channel endpoints and a structured logger.
package ppdu

import (
	"fmt"

	"github.com/develper21/ppdu/config"
	"github.com/develper21/ppdu/consent"
	consentsqlite "github.com/develper21/ppdu/consent/sqlite"
	"github.com/develper21/ppdu/core"
	"github.com/develper21/ppdu/dispatch"
	"github.com/develper21/ppdu/logging"
	"github.com/develper21/ppdu/observer"
	"github.com/develper21/ppdu/pipeline"
	"github.com/develper21/ppdu/risk"
)

// Options configures the Agent instance.
type Options struct {
	// Config drives scorer weights, thresholds, pipeline tuning, dispatch
	// timeout/endpoints and consent seeding. Defaults to config.Default().
	Config config.File

	// Stores (defaults to in-memory implementations if not provided; a
	// consent db_path in Config selects the SQLite backend instead)
	ContextStore core.ContextStore
	ConsentStore core.ConsentStore

	// External channels. Unset channels fall back to the webhook endpoints
	// configured in Config, and failing that to logging channels.
	Notifier  core.NotificationChannel
	Messenger core.MessagingChannel
	Authority core.AuthorityChannel

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Agent is the high-level façade aggregating the underlying pipeline and
// services.
type Agent struct {
	opts         Options
	pipeline     *pipeline.Pipeline
	consentStore core.ConsentStore
}

// New creates a new Agent instance with optional overrides. Any unset service
// is initialized per configuration or with an in-memory implementation.
func New(optFns ...func(o *Options)) (*Agent, error) {
	opts := Options{
		Config:       config.Default(),
		ContextStore: observer.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	consentStore := opts.ConsentStore
	if consentStore == nil {
		if path := opts.Config.Consent.DBPath; path != "" {
			store, err := consentsqlite.NewStore(path)
			if err != nil {
				return nil, fmt.Errorf("open consent store: %w", err)
			}
			consentStore = store
		} else {
			consentStore = consent.NewInMemoryStore()
		}
	}
	for _, subjectID := range opts.Config.Consent.Granted {
		if err := consentStore.Set(subjectID, true); err != nil {
			return nil, fmt.Errorf("seed consent for %s: %w", subjectID, err)
		}
	}

	notifier, messenger, authority := resolveChannels(opts)

	dispatcher := dispatch.New(notifier, messenger, authority, func(o *dispatch.Options) {
		o.Timeout = opts.Config.DispatchTimeout()
		o.Logger = opts.Logger
	})

	riskConfig := opts.Config.RiskConfig()
	p := pipeline.New(func(o *pipeline.Options) {
		o.QueueSize = opts.Config.Pipeline.QueueSize
		o.ContextStore = opts.ContextStore
		o.ConsentStore = consentStore
		o.Scorer = risk.NewScorer(func(c *risk.Config) { *c = riskConfig })
		o.Dispatcher = dispatcher
		o.Logger = opts.Logger
	})

	return &Agent{opts: opts, pipeline: p, consentStore: consentStore}, nil
}

// resolveChannels picks, per channel, the explicit override, then the
// configured webhook endpoint, then the logging fallback.
func resolveChannels(opts Options) (core.NotificationChannel, core.MessagingChannel, core.AuthorityChannel) {
	webhooks := opts.Config.Dispatch.Webhooks
	var web *dispatch.WebhookChannels
	if webhooks.NotifyURL != "" || webhooks.AlertURL != "" || webhooks.AuthorityURL != "" {
		web = dispatch.NewWebhookChannels(webhooks.NotifyURL, webhooks.AlertURL, webhooks.AuthorityURL)
	}
	logChannels := dispatch.NewLogChannels(opts.Logger)

	notifier := opts.Notifier
	if notifier == nil {
		if web != nil && webhooks.NotifyURL != "" {
			notifier = web
		} else {
			notifier = logChannels
		}
	}

	messenger := opts.Messenger
	if messenger == nil {
		if web != nil && webhooks.AlertURL != "" {
			messenger = web
		} else {
			messenger = logChannels
		}
	}

	authority := opts.Authority
	if authority == nil {
		if web != nil && webhooks.AuthorityURL != "" {
			authority = web
		} else {
			authority = logChannels
		}
	}

	return notifier, messenger, authority
}

// Ingest feeds a partial context update for a subject into the pipeline.
// Always accepted; downstream failures never reach the caller.
func (a *Agent) Ingest(subjectID string, update core.ContextUpdate) {
	a.pipeline.Ingest(subjectID, update)
}

// Context returns a copy of the subject's current merged snapshot, if any.
func (a *Agent) Context(subjectID string) (core.UserContext, bool) {
	return a.pipeline.Context(subjectID)
}

// GrantConsent records affirmative consent for high-impact interventions.
func (a *Agent) GrantConsent(subjectID string) error {
	return a.consentStore.Set(subjectID, true)
}

// RevokeConsent removes the subject's consent record.
func (a *Agent) RevokeConsent(subjectID string) error {
	return a.consentStore.Revoke(subjectID)
}

// Close stops accepting updates and drains all in-flight pipeline passes.
func (a *Agent) Close() { a.pipeline.Close() }
