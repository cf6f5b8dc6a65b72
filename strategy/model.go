package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/model"
)

// ModelStrategyOptions configures a ModelStrategy.
type ModelStrategyOptions struct {
	// Timeout bounds each advisor call. Zero means no per-call timeout beyond
	// the caller's context.
	Timeout time.Duration
}

// ModelStrategy delegates each decision to a model.Advisor and normalizes the
// advice into a contract-safe decision: advised proposals are clamped to the
// party's own limit and accepts are pinned to the counterpart's standing
// price. It works on either side of the table.
//
// ModelStrategy is the documented exception to the determinism expected of
// policies; use the built-in ones when runs must be reproducible.
type ModelStrategy struct {
	advisor model.Advisor
	opts    ModelStrategyOptions
}

// NewModelStrategy constructs an LLM-advised strategy around an advisor.
// Default per-call timeout is 30 seconds.
func NewModelStrategy(advisor model.Advisor, optFns ...func(o *ModelStrategyOptions)) *ModelStrategy {
	opts := ModelStrategyOptions{Timeout: 30 * time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ModelStrategy{advisor: advisor, opts: opts}
}

// Name implements Strategy.
func (m *ModelStrategy) Name() string {
	return fmt.Sprintf("model(%s)", m.advisor.Info().Name)
}

// Decide implements Strategy.
func (m *ModelStrategy) Decide(ctx context.Context, view core.Context) (core.Decision, error) {
	if m.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
		defer cancel()
	}

	advice, err := m.advisor.Advise(ctx, model.Request{
		Party:   view.Party,
		Limit:   view.Limit,
		Turn:    view.Turn,
		History: view.History,
	})
	if err != nil {
		return core.Decision{}, fmt.Errorf("advisor %s: %w", m.advisor.Info().Name, err)
	}

	switch advice.Action {
	case "walk_away":
		return core.WalkAwayDecision(), nil

	case "accept":
		standing, ok := view.LatestRivalPrice()
		if !ok {
			return core.Decision{}, fmt.Errorf("advisor %s accepted with no standing proposal", m.advisor.Info().Name)
		}
		// Accepting past the own limit is legal for the session but never what
		// the operator wants from an automated party.
		if view.Party == core.Buyer && standing > view.Limit {
			return core.WalkAwayDecision(), nil
		}
		return core.AcceptDecision(standing), nil

	case "propose":
		if advice.Price <= 0 {
			return core.Decision{}, fmt.Errorf("advisor %s returned non-positive price %.2f", m.advisor.Info().Name, advice.Price)
		}
		price := advice.Price
		if view.Party == core.Buyer {
			price = clampBuyer(price, view.Limit)
		} else {
			price = clampSeller(price, view.Limit)
		}
		return core.ProposeDecision(price), nil

	default:
		return core.Decision{}, fmt.Errorf("advisor %s returned unknown action %q", m.advisor.Info().Name, advice.Action)
	}
}
