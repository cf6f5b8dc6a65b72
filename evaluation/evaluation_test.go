package evaluation

import (
	"errors"
	"testing"

	"github.com/hupe1980/haggle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedResult(id string, price float64, turns int) core.Result {
	return core.Result{
		SessionID:    id,
		Outcome:      core.StatusClosed,
		ClosingPrice: price,
		TotalTurns:   turns,
	}
}

func TestBudgetEvaluator_ClosedDeal(t *testing.T) {
	ev := NewBudgetEvaluator()

	m, err := ev.Evaluate(Invocation{
		Config:      core.DefaultConfig(100, 70),
		Result:      closedResult("s1", 85, 6),
		MarketPrice: 90,
	})
	require.NoError(t, err)

	assert.True(t, m.DealClosed)
	assert.InDelta(t, 85, m.ClosingPrice, 1e-9)
	assert.InDelta(t, 15, m.Savings, 1e-9)
	assert.InDelta(t, 15, m.SavingsPct, 1e-9)
	assert.True(t, m.BelowMarket)
	assert.Equal(t, 6, m.TotalTurns)
}

func TestBudgetEvaluator_NoDeal(t *testing.T) {
	ev := NewBudgetEvaluator()

	m, err := ev.Evaluate(Invocation{
		Config: core.DefaultConfig(100, 200),
		Result: core.Result{SessionID: "s2", Outcome: core.StatusWalkedAway, TotalTurns: 2},
	})
	require.NoError(t, err)

	assert.False(t, m.DealClosed)
	assert.Zero(t, m.ClosingPrice)
	assert.Zero(t, m.Savings)
	assert.Equal(t, 2, m.TotalTurns)
}

func TestBudgetEvaluator_NoMarketPrice(t *testing.T) {
	ev := NewBudgetEvaluator()

	m, err := ev.Evaluate(Invocation{
		Config: core.DefaultConfig(100, 70),
		Result: closedResult("s3", 120, 4),
	})
	require.NoError(t, err)

	// Accepts above budget can happen only through custom strategies; the
	// evaluator still scores them, just with negative savings.
	assert.InDelta(t, -20, m.Savings, 1e-9)
	assert.False(t, m.BelowMarket)
}

func TestBudgetEvaluator_InvalidConfig(t *testing.T) {
	ev := NewBudgetEvaluator()

	_, err := ev.Evaluate(Invocation{Result: closedResult("s4", 10, 2)})
	var cfgErr *core.ConfigError
	require.True(t, errors.As(err, &cfgErr))

	lenient := NewBudgetEvaluator(func(o *BudgetEvaluatorOptions) { o.RequireValidConfig = false })
	m, err := lenient.Evaluate(Invocation{Result: closedResult("s4", 10, 2)})
	require.NoError(t, err)
	assert.True(t, m.DealClosed)
	assert.Zero(t, m.SavingsPct)
}

func TestSummarize(t *testing.T) {
	metrics := []Metrics{
		{SessionID: "a", DealClosed: true, ClosingPrice: 80, SavingsPct: 20, TotalTurns: 6},
		{SessionID: "b", DealClosed: true, ClosingPrice: 90, SavingsPct: 10, TotalTurns: 8},
		{SessionID: "c", DealClosed: false, TotalTurns: 10},
		{SessionID: "d", DealClosed: false, TotalTurns: 4},
	}

	s := Summarize(metrics)

	assert.Equal(t, 4, s.Sessions)
	assert.Equal(t, 2, s.Deals)
	assert.InDelta(t, 50, s.DealRate, 1e-9)
	assert.InDelta(t, 85, s.AvgClosingPrice, 1e-9)
	assert.InDelta(t, 15, s.AvgSavingsPct, 1e-9)
	assert.InDelta(t, 80, s.BestClosingPrice, 1e-9)
	assert.InDelta(t, 7, s.AvgTurns, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
