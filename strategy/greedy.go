package strategy

import (
	"context"

	"github.com/hupe1980/haggle/core"
)

// GreedyOptions configures the Greedy buyer.
type GreedyOptions struct {
	// InitialDiscount is the anchor gap as a fraction of budget.
	InitialDiscount float64
	// AcceptanceTolerance is the closeness threshold for accepting.
	AcceptanceTolerance float64
	// WalkAwayMargin is how far past budget a counter-offer may reach before
	// the buyer terminates.
	WalkAwayMargin float64
}

// Greedy is a deal-hungry buyer: it splits the difference between the seller's
// latest ask and its own last offer every turn, so the gap halves round after
// round and the exchange converges fast. Greedy for a close, not for savings.
type Greedy struct {
	opts GreedyOptions
}

// NewGreedy constructs a Greedy buyer. Defaults: 30% anchor discount, 5%
// acceptance tolerance, 40% walk-away margin.
func NewGreedy(optFns ...func(o *GreedyOptions)) *Greedy {
	opts := GreedyOptions{
		InitialDiscount:     0.30,
		AcceptanceTolerance: 0.05,
		WalkAwayMargin:      0.40,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Greedy{opts: opts}
}

// Name implements Strategy.
func (g *Greedy) Name() string { return "greedy" }

// Decide implements Strategy for the buyer side.
func (g *Greedy) Decide(_ context.Context, view core.Context) (core.Decision, error) {
	if view.Party != core.Buyer {
		return core.Decision{}, errWrongSide(g.Name(), core.Buyer, view.Party)
	}

	budget := view.Limit
	anchor := budget * (1 - g.opts.InitialDiscount)

	sellerPrice, haveSeller := view.LatestRivalPrice()
	if !haveSeller {
		return core.ProposeDecision(anchor), nil
	}

	if sellerPrice > budget*(1+g.opts.WalkAwayMargin) {
		return core.WalkAwayDecision(), nil
	}

	reference := anchor
	if lastOwn, ok := view.LastOwn(); ok {
		reference = lastOwn.Price
	}

	if sellerPrice <= budget && sellerPrice <= reference*(1+g.opts.AcceptanceTolerance) {
		return core.AcceptDecision(sellerPrice), nil
	}

	// Split the difference, never past budget or below the last own offer.
	next := clampBuyer((sellerPrice+reference)/2, budget)
	if next < reference {
		next = reference
	}
	if sellerPrice <= budget && next >= sellerPrice {
		return core.AcceptDecision(sellerPrice), nil
	}
	return core.ProposeDecision(next), nil
}
