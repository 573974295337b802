package pipeline

import (
	"context"
	"sync"

	"github.com/develper21/ppdu/consent"
	"github.com/develper21/ppdu/core"
	"github.com/develper21/ppdu/dispatch"
	"github.com/develper21/ppdu/logging"
	"github.com/develper21/ppdu/observer"
	"github.com/develper21/ppdu/policy"
	"github.com/develper21/ppdu/risk"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// QueueSize bounds the pending updates per subject. When the queue is
	// full the oldest pending update is dropped with a warning; ordering of
	// retained updates is preserved.
	QueueSize int
	// ContextStore owns the current snapshot per subject.
	ContextStore core.ContextStore
	// ConsentStore backs the consent gate lookup.
	ConsentStore core.ConsentStore
	// Scorer evaluates risk for merged snapshots.
	Scorer *risk.Scorer
	// Dispatcher executes authorized decisions. Defaults to logging channels.
	Dispatcher *dispatch.Dispatcher
	// Logger defaults to a NoOp logger if nil.
	Logger logging.Logger
}

// Pipeline coordinates the full pass for each context update: merge →
// score → decide → gate → dispatch. Public methods are safe for concurrent
// use.
type Pipeline struct {
	store      core.ContextStore
	scorer     *risk.Scorer
	policy     *policy.Engine
	gate       *consent.Gate
	dispatcher *dispatch.Dispatcher
	logger     logging.Logger

	queueSize int

	mu      sync.Mutex
	workers map[string]chan core.UserContext
	wg      sync.WaitGroup
	closed  bool
}

// New constructs a Pipeline with optional overrides. Any unset dependency is
// initialized with an in-memory or logging implementation.
func New(optFns ...func(o *Options)) *Pipeline {
	opts := Options{
		QueueSize:    16,
		ContextStore: observer.NewInMemoryStore(),
		ConsentStore: consent.NewInMemoryStore(),
		Scorer:       risk.NewScorer(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	// An unbuffered queue would make enqueueLocked spin under the lock.
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}

	if opts.Dispatcher == nil {
		channels := dispatch.NewLogChannels(opts.Logger)
		opts.Dispatcher = dispatch.New(channels, channels, channels, func(o *dispatch.Options) {
			o.Logger = opts.Logger
		})
	}

	return &Pipeline{
		store:  opts.ContextStore,
		scorer: opts.Scorer,
		policy: policy.NewEngine(),
		gate: consent.NewGate(opts.ConsentStore, func(o *consent.GateOptions) {
			o.Logger = opts.Logger
		}),
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger,
		queueSize:  opts.QueueSize,
		workers:    make(map[string]chan core.UserContext),
	}
}

// Ingest is the ingestion boundary: it merges the partial update into the
// context store and queues exactly one downstream pass for the merged
// snapshot. The call is always "accepted" — downstream failures never reach
// the caller.
func (p *Pipeline) Ingest(subjectID string, update core.ContextUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.Warn("update ignored after close subject_id=%s", subjectID)
		return
	}

	// Merge under the lock: merge order and queue order must agree, or a
	// stale snapshot could be processed after a fresher one.
	snapshot := p.store.Update(subjectID, update)

	p.logger.Debug("context updated subject_id=%s activity=%s", snapshot.SubjectID, snapshot.Activity)

	queue, ok := p.workers[snapshot.SubjectID]
	if !ok {
		queue = make(chan core.UserContext, p.queueSize)
		p.workers[snapshot.SubjectID] = queue
		p.wg.Add(1)
		go p.runWorker(queue)
	}

	p.enqueueLocked(queue, snapshot)
}

// enqueueLocked performs a non-blocking enqueue, dropping the oldest pending
// update when the queue is full. Caller must hold p.mu; sends never block so
// the lock is held only briefly.
func (p *Pipeline) enqueueLocked(queue chan core.UserContext, snapshot core.UserContext) {
	for {
		select {
		case queue <- snapshot:
			return
		default:
		}
		select {
		case dropped := <-queue:
			p.logger.Warn("queue full; dropped pending update subject_id=%s", dropped.SubjectID)
		default:
		}
	}
}

// runWorker drains one subject's queue, running the full pass for each
// snapshot strictly in arrival order.
func (p *Pipeline) runWorker(queue <-chan core.UserContext) {
	defer p.wg.Done()
	for snapshot := range queue {
		p.runPass(snapshot)
	}
}

// runPass executes scoring, decision, consent and dispatch for one snapshot.
// Any panic inside a stage is contained here: the pass is abandoned, the
// store's merged snapshot remains valid for the next pass.
func (p *Pipeline) runPass(snapshot core.UserContext) {
	passID := core.NewID()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline pass abandoned subject_id=%s pass_id=%s: %v", snapshot.SubjectID, passID, r)
		}
	}()

	eval := p.scorer.Evaluate(snapshot)
	p.logger.Info("risk evaluated subject_id=%s pass_id=%s score=%d level=%s factors=%v",
		snapshot.SubjectID, passID, eval.Score, eval.Level, eval.Factors)

	decision := p.policy.MakeDecision(eval)
	p.logger.Debug("decision made subject_id=%s pass_id=%s action_type=%s priority=%d",
		snapshot.SubjectID, passID, decision.ActionType, decision.Priority)

	verdict := p.gate.Validate(snapshot.SubjectID, decision)
	if !verdict.Allowed {
		// Not an error: a normal, loggable outcome that suppresses dispatch.
		p.logger.Warn("action blocked subject_id=%s pass_id=%s action_type=%s reason=%q",
			snapshot.SubjectID, passID, decision.ActionType, verdict.Reason)
		return
	}

	outcome := p.dispatcher.Execute(context.Background(), decision, snapshot)
	if outcome.Err != nil {
		p.logger.Error("dispatch outcome subject_id=%s pass_id=%s action_type=%s: %v",
			snapshot.SubjectID, passID, outcome.ActionType, outcome.Err)
	}
}

// Context returns a copy of the subject's current snapshot, if any.
func (p *Pipeline) Context(subjectID string) (core.UserContext, bool) {
	return p.store.Get(subjectID)
}

// Close stops accepting updates and blocks until all queued passes have
// completed. Safe to call once; subsequent Ingest calls are ignored with a
// warning.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, queue := range p.workers {
		close(queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}
