package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultConfig(100, 70))
	require.NoError(t, err)
	return s
}

func TestNewSession_InvalidConfig(t *testing.T) {
	_, err := NewSession(Config{})
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestSession_AlternatesTurns(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, Buyer, s.NextParty())

	require.NoError(t, s.Apply(ProposeDecision(80)))
	assert.Equal(t, Seller, s.NextParty())

	require.NoError(t, s.Apply(ProposeDecision(120)))
	assert.Equal(t, Buyer, s.NextParty())

	assert.Equal(t, StatusActive, s.Status())
	assert.Equal(t, 2, s.TotalTurns())
}

func TestSession_TurnIndicesStrictlyIncrease(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))
	require.NoError(t, s.Apply(ProposeDecision(120)))
	require.NoError(t, s.Apply(ProposeDecision(90)))

	for i, o := range s.History() {
		assert.Equal(t, i, o.Turn)
	}
}

func TestSession_AcceptClosesAtStandingPrice(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))
	require.NoError(t, s.Apply(ProposeDecision(95)))
	require.NoError(t, s.Apply(AcceptDecision(95)))

	assert.Equal(t, StatusClosed, s.Status())
	res := s.Result()
	assert.Equal(t, StatusClosed, res.Outcome)
	assert.Equal(t, 95.0, res.ClosingPrice)
	assert.Equal(t, 3, res.TotalTurns)
}

func TestSession_AcceptWithoutStandingProposal(t *testing.T) {
	s := newTestSession(t)
	err := s.Apply(AcceptDecision(90))
	var violation *ContractViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, Buyer, violation.Party)
	assert.Equal(t, StatusActive, s.Status())
	assert.Zero(t, s.TotalTurns())
}

func TestSession_AcceptPriceMismatch(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))
	require.NoError(t, s.Apply(ProposeDecision(95)))

	err := s.Apply(AcceptDecision(94))
	var violation *ContractViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, StatusActive, s.Status())
}

func TestSession_LimitViolations(t *testing.T) {
	t.Run("buyer above budget", func(t *testing.T) {
		s := newTestSession(t)
		err := s.Apply(ProposeDecision(101))
		var violation *ContractViolationError
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, Buyer, violation.Party)
	})

	t.Run("seller below reserve", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.Apply(ProposeDecision(80)))
		err := s.Apply(ProposeDecision(60))
		var violation *ContractViolationError
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, Seller, violation.Party)
	})

	t.Run("non-positive price", func(t *testing.T) {
		s := newTestSession(t)
		err := s.Apply(ProposeDecision(0))
		var violation *ContractViolationError
		require.True(t, errors.As(err, &violation))
	})

	t.Run("proposal at the exact limit is allowed", func(t *testing.T) {
		s := newTestSession(t)
		assert.NoError(t, s.Apply(ProposeDecision(100)))
	})
}

func TestSession_TerminalRejectsFurtherDecisions(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))
	require.NoError(t, s.Apply(ProposeDecision(95)))
	require.NoError(t, s.Apply(AcceptDecision(95)))

	err := s.Apply(ProposeDecision(96))
	var violation *ContractViolationError
	require.True(t, errors.As(err, &violation))
	assert.True(t, errors.Is(err, ErrTerminalSession))
	assert.Equal(t, 3, s.TotalTurns())
}

func TestSession_WalkAway(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))
	require.NoError(t, s.Apply(WalkAwayDecision()))

	assert.Equal(t, StatusWalkedAway, s.Status())
	res := s.Result()
	assert.Equal(t, StatusWalkedAway, res.Outcome)
	assert.Zero(t, res.ClosingPrice)
}

func TestSession_Stalemate(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))
	require.NoError(t, s.Stalemate())

	// Forced walk-away flips the status without growing the history past the
	// turn cap.
	assert.Equal(t, StatusWalkedAway, s.Status())
	assert.Equal(t, 1, s.TotalTurns())
	assert.Zero(t, s.Result().ClosingPrice)

	assert.ErrorIs(t, s.Stalemate(), ErrTerminalSession)
}

func TestSession_HistoryIsDefensiveCopy(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))

	history := s.History()
	history[0].Price = 1
	assert.Equal(t, 80.0, s.History()[0].Price)

	view := s.View()
	view.History[0].Price = 2
	assert.Equal(t, 80.0, s.History()[0].Price)
}

func TestSession_ViewCarriesOwnLimitOnly(t *testing.T) {
	s := newTestSession(t)
	view := s.View()
	assert.Equal(t, Buyer, view.Party)
	assert.Equal(t, 100.0, view.Limit)
	assert.Zero(t, view.Turn)

	require.NoError(t, s.Apply(ProposeDecision(80)))
	view = s.View()
	assert.Equal(t, Seller, view.Party)
	assert.Equal(t, 70.0, view.Limit)
	assert.Equal(t, 1, view.Turn)
}

func TestSession_Clone(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Apply(ProposeDecision(80)))

	clone := s.Clone()
	require.NoError(t, s.Apply(ProposeDecision(95)))

	assert.Equal(t, 1, clone.TotalTurns())
	assert.Equal(t, 2, s.TotalTurns())
	assert.Equal(t, s.ID(), clone.ID())
}
