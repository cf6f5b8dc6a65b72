// Package haggle provides a high-level façade over the core negotiation
// Engine and its services (sessions, evaluation & logging) for simulating
// two-party price negotiations. Most applications interact with this package
// by:
//  1. Creating a Haggle via New() (optionally overriding default in-memory services)
//  2. Picking buyer and seller policies from the strategy package (or writing their own)
//  3. Running single sessions (Negotiate) or whole tournaments (NegotiateAll)
//
// The façade delegates the turn loop to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; longer-lived deployments typically supply a durable session store
// and a structured logger.
package haggle

import (
	"context"

	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/engine"
	"github.com/hupe1980/haggle/evaluation"
	"github.com/hupe1980/haggle/logging"
	"github.com/hupe1980/haggle/session"
	"github.com/hupe1980/haggle/strategy"
)

// Options configures the Haggle instance.
type Options struct {
	// EngineConfig carries operational parameters (batch concurrency).
	EngineConfig engine.Config

	// SessionStore archives finished sessions. Defaults to an in-memory
	// implementation if not provided.
	SessionStore core.SessionStore

	// Evaluator scores finished sessions for NegotiateAll summaries. Defaults
	// to the budget evaluator.
	Evaluator evaluation.Evaluator

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Haggle is the high-level façade aggregating the underlying engine and services.
type Haggle struct {
	opts      Options
	engine    *engine.Engine
	evaluator evaluation.Evaluator
}

// New creates a new Haggle instance with optional overrides. Any unset service
// is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Haggle {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
		SessionStore: session.NewInMemoryStore(),
		Evaluator:    evaluation.NewBudgetEvaluator(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := engine.New(func(o *engine.Options) {
		o.Config = opts.EngineConfig
		o.SessionStore = opts.SessionStore
		o.Logger = opts.Logger
	})

	return &Haggle{opts: opts, engine: e, evaluator: opts.Evaluator}
}

// Negotiate runs a single session to termination and returns its result.
func (h *Haggle) Negotiate(ctx context.Context, cfg core.Config, buyer, seller strategy.Strategy) (*core.Result, error) {
	return h.engine.Run(ctx, cfg, buyer, seller)
}

// Outcome pairs one scenario's result with its evaluation in a tournament.
type Outcome struct {
	Scenario engine.Scenario
	Result   *core.Result
	Metrics  *evaluation.Metrics
	Err      error
}

// NegotiateAll runs the scenarios as a concurrent batch, evaluates each
// finished session and returns per-scenario outcomes in input order together
// with the aggregate summary. A failing scenario is reported in its Outcome
// and excluded from the summary.
func (h *Haggle) NegotiateAll(ctx context.Context, scenarios []engine.Scenario) ([]Outcome, evaluation.Summary, error) {
	batch := h.engine.RunBatch(ctx, scenarios)

	outcomes := make([]Outcome, len(batch))
	metrics := make([]evaluation.Metrics, 0, len(batch))

	for i, br := range batch {
		out := Outcome{Scenario: br.Scenario, Result: br.Result, Err: br.Err}
		if br.Err == nil {
			m, err := h.evaluator.Evaluate(evaluation.Invocation{
				Config: br.Scenario.Config,
				Result: *br.Result,
			})
			if err != nil {
				out.Err = err
			} else {
				out.Metrics = m
				metrics = append(metrics, *m)
			}
		}
		outcomes[i] = out
	}

	return outcomes, evaluation.Summarize(metrics), nil
}

// Sessions exposes the archive of finished sessions.
func (h *Haggle) Sessions() core.SessionStore { return h.opts.SessionStore }
