package evaluation

import (
	"github.com/hupe1980/haggle/core"
)

// Invocation pairs a finished session result with the configuration it ran
// under. The configuration is needed because results deliberately omit the
// parties' private limits.
type Invocation struct {
	// Config is the session configuration, including the buyer's budget.
	Config core.Config
	// Result is the terminal session outcome.
	Result core.Result
	// MarketPrice is an optional external reference price for the item under
	// negotiation. Zero means unknown; market-relative metrics are then left
	// unset.
	MarketPrice float64
}

// Metrics captures the evaluation of a single session from the buyer's
// perspective.
type Metrics struct {
	SessionID string `json:"session_id"`

	// DealClosed is true when the session ended in an accepted price.
	DealClosed bool `json:"deal_closed"`

	// ClosingPrice is the accepted price, zero when no deal was reached.
	ClosingPrice float64 `json:"closing_price,omitempty"`

	// Savings is budget minus closing price, zero when no deal was reached.
	Savings float64 `json:"savings,omitempty"`

	// SavingsPct expresses Savings as a percentage of the budget.
	SavingsPct float64 `json:"savings_pct,omitempty"`

	// BelowMarket is true when a deal closed under the reference market price.
	// Only meaningful when a market price was supplied.
	BelowMarket bool `json:"below_market,omitempty"`

	// TotalTurns is the number of recorded turns including the closing one.
	TotalTurns int `json:"total_turns"`
}

// Evaluator scores a single finished session.
type Evaluator interface {
	Evaluate(invocation Invocation) (*Metrics, error)
}

// BudgetEvaluatorOptions configures the BudgetEvaluator.
type BudgetEvaluatorOptions struct {
	// RequireValidConfig rejects invocations whose configuration fails
	// validation instead of scoring them as-is.
	RequireValidConfig bool
}

// BudgetEvaluator scores sessions by how much of the buyer's budget was
// preserved. It is the standard evaluator for batch comparisons.
type BudgetEvaluator struct {
	opts BudgetEvaluatorOptions
}

// Compile-time check that BudgetEvaluator satisfies the Evaluator interface.
var _ Evaluator = (*BudgetEvaluator)(nil)

// NewBudgetEvaluator creates a BudgetEvaluator with optional configuration.
func NewBudgetEvaluator(optFns ...func(o *BudgetEvaluatorOptions)) *BudgetEvaluator {
	opts := BudgetEvaluatorOptions{
		RequireValidConfig: true,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &BudgetEvaluator{opts: opts}
}

// Evaluate implements Evaluator.
func (b *BudgetEvaluator) Evaluate(invocation Invocation) (*Metrics, error) {
	if b.opts.RequireValidConfig {
		if err := invocation.Config.Validate(); err != nil {
			return nil, err
		}
	}

	m := &Metrics{
		SessionID:  invocation.Result.SessionID,
		TotalTurns: invocation.Result.TotalTurns,
	}

	if invocation.Result.Outcome != core.StatusClosed {
		return m, nil
	}

	budget := invocation.Config.BuyerBudget

	m.DealClosed = true
	m.ClosingPrice = invocation.Result.ClosingPrice
	m.Savings = budget - m.ClosingPrice
	if budget > 0 {
		m.SavingsPct = m.Savings / budget * 100
	}
	if invocation.MarketPrice > 0 {
		m.BelowMarket = m.ClosingPrice < invocation.MarketPrice
	}

	return m, nil
}

// Summary aggregates metrics across a batch of sessions.
type Summary struct {
	// Sessions is the number of evaluated sessions.
	Sessions int `json:"sessions"`

	// Deals is the number of sessions that closed with an accepted price.
	Deals int `json:"deals"`

	// DealRate is Deals over Sessions as a percentage.
	DealRate float64 `json:"deal_rate"`

	// AvgClosingPrice averages closing prices over closed deals only.
	AvgClosingPrice float64 `json:"avg_closing_price,omitempty"`

	// AvgSavingsPct averages budget savings over closed deals only.
	AvgSavingsPct float64 `json:"avg_savings_pct,omitempty"`

	// BestClosingPrice is the cheapest closed deal in the batch.
	BestClosingPrice float64 `json:"best_closing_price,omitempty"`

	// AvgTurns averages turn counts over all sessions, deal or not.
	AvgTurns float64 `json:"avg_turns"`
}

// Summarize aggregates per-session metrics into a batch Summary. An empty
// input yields a zero Summary.
func Summarize(metrics []Metrics) Summary {
	var s Summary
	if len(metrics) == 0 {
		return s
	}

	var priceSum, savingsSum float64
	var turnSum int

	for _, m := range metrics {
		s.Sessions++
		turnSum += m.TotalTurns

		if !m.DealClosed {
			continue
		}

		s.Deals++
		priceSum += m.ClosingPrice
		savingsSum += m.SavingsPct
		if s.BestClosingPrice == 0 || m.ClosingPrice < s.BestClosingPrice {
			s.BestClosingPrice = m.ClosingPrice
		}
	}

	s.DealRate = float64(s.Deals) / float64(s.Sessions) * 100
	s.AvgTurns = float64(turnSum) / float64(s.Sessions)
	if s.Deals > 0 {
		s.AvgClosingPrice = priceSum / float64(s.Deals)
		s.AvgSavingsPct = savingsSum / float64(s.Deals)
	}

	return s
}
