package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/logging"
	"github.com/hupe1980/haggle/session"
	"github.com/hupe1980/haggle/strategy"
)

// Config defines tuning parameters for the Engine's operational behavior.
type Config struct {
	// MaxConcurrentSessions limits how many sessions a batch run executes
	// simultaneously. This prevents resource exhaustion and provides
	// backpressure. Set to 0 for unlimited (not recommended).
	MaxConcurrentSessions int
}

// DefaultConfig provides production-ready default configuration values.
var DefaultConfig = Config{
	MaxConcurrentSessions: 10,
}

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Config contains operational parameters for the engine behavior.
	// Defaults to DefaultConfig if not specified.
	Config Config

	// SessionStore archives finished sessions for reporters and evaluators.
	// Defaults to an in-memory implementation if not provided.
	SessionStore core.SessionStore

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger
}

// Engine drives negotiation sessions to termination.
//
// Core responsibilities:
//   - Turn loop: alternate Decide calls per the session's first-mover rule
//   - Liveness: force the stalemate walk-away once the turn cap is reached
//   - Contract enforcement: surface strategy violations raised by the session
//   - Archival: hand finished sessions to the configured SessionStore
//
// The Engine is safe for concurrent use; independent sessions share nothing.
type Engine struct {
	store  core.SessionStore
	logger logging.Logger
	config Config
}

// New creates a new Engine with sensible defaults and optional configuration.
//
// Example:
//
//	e := engine.New(func(o *engine.Options) {
//	    o.Logger = logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	})
//	result, err := e.Run(ctx, core.DefaultConfig(100, 70),
//	    strategy.NewDiplomat(core.DefaultCurve), strategy.NewFirmSeller())
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:       DefaultConfig,
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		store:  opts.SessionStore,
		logger: opts.Logger,
		config: opts.Config,
	}
}

// Run executes one session to termination: it alternates Decide calls between
// buyer and seller until the session closes, a party walks away, the turn cap
// forces a stalemate, or a strategy breaks the decision protocol.
//
// A ContractViolationError aborts the run and is returned to the caller; it
// indicates a broken strategy implementation, not a failed negotiation.
// Stalemates are normal outcomes and never surface as errors.
func (e *Engine) Run(ctx context.Context, cfg core.Config, buyer, seller strategy.Strategy) (*core.Result, error) {
	sess, err := core.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	e.logger.Debug("session started session_id=%s buyer=%s seller=%s first_mover=%s max_turns=%d",
		sess.ID(), buyer.Name(), seller.Name(), cfg.FirstMover, cfg.MaxTurns)

	for sess.Active() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if sess.TotalTurns() >= cfg.MaxTurns {
			// Normal terminal outcome, not an error.
			if err := sess.Stalemate(); err != nil {
				return nil, err
			}
			e.logger.Debug("stalemate at turn cap session_id=%s max_turns=%d", sess.ID(), cfg.MaxTurns)
			break
		}

		party := sess.NextParty()
		active := buyer
		if party == core.Seller {
			active = seller
		}

		view := sess.View()
		decision, err := active.Decide(ctx, view)
		if err != nil {
			return nil, fmt.Errorf("strategy %s failed at turn %d: %w", active.Name(), view.Turn, err)
		}

		if err := sess.Apply(decision); err != nil {
			e.logger.Error("session aborted session_id=%s strategy=%s turn=%d error=%v",
				sess.ID(), active.Name(), view.Turn, err)
			return nil, err
		}

		e.logger.Debug("turn applied session_id=%s strategy=%s turn=%d action=%s price=%.2f",
			sess.ID(), active.Name(), view.Turn, decision.Action, decision.Price)
	}

	if err := e.store.Save(sess); err != nil {
		return nil, fmt.Errorf("archive session %s: %w", sess.ID(), err)
	}

	result := sess.Result()
	e.logger.Info("session finished session_id=%s outcome=%s closing_price=%.2f total_turns=%d duration=%s",
		result.SessionID, result.Outcome, result.ClosingPrice, result.TotalTurns, time.Since(start))

	return &result, nil
}

// Scenario pairs a configuration with the strategies that will contest it.
type Scenario struct {
	// Name labels the scenario in results and logs.
	Name string
	// Config carries the session parameters.
	Config core.Config
	// Buyer and Seller are the contending strategies. Built-in policies are
	// pure and may safely be shared across scenarios.
	Buyer  strategy.Strategy
	Seller strategy.Strategy
}

// BatchResult carries one scenario's outcome (or failure) in a batch run.
type BatchResult struct {
	Scenario Scenario
	Result   *core.Result
	Err      error
}

// RunBatch executes independent scenarios concurrently, bounded by
// Config.MaxConcurrentSessions, and returns results in scenario order. Each
// scenario gets its own session; there is no shared mutable state between
// them. A failing scenario does not stop the others; failures are reported
// per entry.
func (e *Engine) RunBatch(ctx context.Context, scenarios []Scenario) []BatchResult {
	results := make([]BatchResult, len(scenarios))

	var sem chan struct{}
	if e.config.MaxConcurrentSessions > 0 {
		sem = make(chan struct{}, e.config.MaxConcurrentSessions)
	}

	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(i int, sc Scenario) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			res, err := e.Run(ctx, sc.Config, sc.Buyer, sc.Seller)
			results[i] = BatchResult{Scenario: sc, Result: res, Err: err}
		}(i, sc)
	}
	wg.Wait()

	return results
}
