package strategy

import (
	"context"
	"testing"

	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ Strategy = (*FirmSeller)(nil)
	_ Strategy = (*GradualSeller)(nil)
)

func TestFirmSeller_OpensWithMarkup(t *testing.T) {
	s := NewFirmSeller() // 50% opening markup
	view := testutil.NewHistoryBuilder().ViewFor(core.Seller, 70)

	decision, err := s.Decide(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, core.Propose, decision.Action)
	assert.InDelta(t, 105.0, decision.Price, 1e-9)
}

func TestFirmSeller_AcceptsProfitableOffer(t *testing.T) {
	s := NewFirmSeller() // accepts at >= reserve * 1.10
	view := testutil.NewHistoryBuilder().Seller(105).Buyer(77).ViewFor(core.Seller, 70)

	decision, err := s.Decide(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, core.Accept, decision.Action)
	assert.Equal(t, 77.0, decision.Price)
}

func TestFirmSeller_CountersWithMarkupFlooredAtReserve(t *testing.T) {
	s := NewFirmSeller()

	t.Run("markup above reserve", func(t *testing.T) {
		view := testutil.NewHistoryBuilder().Seller(105).Buyer(75).ViewFor(core.Seller, 70)
		decision, err := s.Decide(context.Background(), view)
		require.NoError(t, err)
		require.Equal(t, core.Propose, decision.Action)
		assert.InDelta(t, 86.25, decision.Price, 1e-9) // 75 * 1.15
	})

	t.Run("floored at reserve", func(t *testing.T) {
		view := testutil.NewHistoryBuilder().Seller(105).Buyer(40).ViewFor(core.Seller, 70)
		decision, err := s.Decide(context.Background(), view)
		require.NoError(t, err)
		require.Equal(t, core.Propose, decision.Action)
		assert.Equal(t, 70.0, decision.Price) // 40 * 1.15 = 46 < reserve
	})
}

func TestFirmSeller_SoftensLate(t *testing.T) {
	s := NewFirmSeller(func(o *FirmSellerOptions) { o.SoftenAfter = 4 })
	builder := testutil.NewHistoryBuilder().Seller(105).Buyer(60).Seller(105).Buyer(72)
	view := builder.ViewFor(core.Seller, 70) // turn 4 -> softened 5% markup

	decision, err := s.Decide(context.Background(), view)
	require.NoError(t, err)
	require.Equal(t, core.Propose, decision.Action)
	assert.InDelta(t, 75.6, decision.Price, 1e-9) // 72 * 1.05
}

func TestGradualSeller_ConcedesTowardReserve(t *testing.T) {
	s := NewGradualSeller(func(o *GradualSellerOptions) {
		o.OpeningMarkup = 0.50
		o.Horizon = 5
	})

	open := testutil.NewHistoryBuilder().ViewFor(core.Seller, 60)
	decision, err := s.Decide(context.Background(), open)
	require.NoError(t, err)
	require.Equal(t, core.Propose, decision.Action)
	assert.InDelta(t, 90.0, decision.Price, 1e-9)

	// One own offer on the books, buyer still below reserve: concede
	// (90 - 60) / (remaining 4 + 1) = 6.
	view := testutil.NewHistoryBuilder().Seller(90).Buyer(50).ViewFor(core.Seller, 60)
	decision, err = s.Decide(context.Background(), view)
	require.NoError(t, err)
	require.Equal(t, core.Propose, decision.Action)
	assert.InDelta(t, 84.0, decision.Price, 1e-9)
}

func TestGradualSeller_AcceptsAtReserve(t *testing.T) {
	s := NewGradualSeller()
	view := testutil.NewHistoryBuilder().Seller(90).Buyer(61).ViewFor(core.Seller, 60)

	decision, err := s.Decide(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, core.Accept, decision.Action)
	assert.Equal(t, 61.0, decision.Price)
}

func TestGradualSeller_FinalRound(t *testing.T) {
	s := NewGradualSeller(func(o *GradualSellerOptions) {
		o.Horizon = 1
		o.ClosingConcession = 0.90
	})

	t.Run("takes a near-reserve offer", func(t *testing.T) {
		view := testutil.NewHistoryBuilder().Seller(90).Buyer(55).ViewFor(core.Seller, 60)
		decision, err := s.Decide(context.Background(), view)
		require.NoError(t, err)
		assert.Equal(t, core.Accept, decision.Action)
		assert.Equal(t, 55.0, decision.Price) // 55 >= 60 * 0.9
	})

	t.Run("walks on a lowball", func(t *testing.T) {
		view := testutil.NewHistoryBuilder().Seller(90).Buyer(40).ViewFor(core.Seller, 60)
		decision, err := s.Decide(context.Background(), view)
		require.NoError(t, err)
		assert.Equal(t, core.WalkAway, decision.Action)
	})
}

func TestSellers_RejectBuyerView(t *testing.T) {
	view := testutil.NewHistoryBuilder().ViewFor(core.Buyer, 100)

	_, err := NewFirmSeller().Decide(context.Background(), view)
	assert.Error(t, err)

	_, err = NewGradualSeller().Decide(context.Background(), view)
	assert.Error(t, err)
}
