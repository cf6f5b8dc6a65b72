package strategy

import (
	"context"

	"github.com/hupe1980/haggle/core"
)

// HardballOptions configures the Hardball buyer.
type HardballOptions struct {
	// InitialDiscount is the anchor gap as a fraction of budget.
	InitialDiscount float64
	// ConcessionRate is the flat fraction of the remaining gap conceded per
	// turn. Hardball never grows it.
	ConcessionRate float64
	// AcceptanceTolerance is the closeness threshold for accepting.
	AcceptanceTolerance float64
}

// Hardball is an aggressive buyer: deep anchor, small flat concessions and no
// patience for prices above budget: any counter-offer past budget ends the
// session immediately.
type Hardball struct {
	opts HardballOptions
}

// NewHardball constructs a Hardball buyer. Defaults: 35% anchor discount, 8%
// flat concession rate, 1% acceptance tolerance.
func NewHardball(optFns ...func(o *HardballOptions)) *Hardball {
	opts := HardballOptions{
		InitialDiscount:     0.35,
		ConcessionRate:      0.08,
		AcceptanceTolerance: 0.01,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Hardball{opts: opts}
}

// Name implements Strategy.
func (h *Hardball) Name() string { return "hardball" }

// Decide implements Strategy for the buyer side.
func (h *Hardball) Decide(_ context.Context, view core.Context) (core.Decision, error) {
	if view.Party != core.Buyer {
		return core.Decision{}, errWrongSide(h.Name(), core.Buyer, view.Party)
	}

	budget := view.Limit
	anchor := budget * (1 - h.opts.InitialDiscount)

	sellerPrice, haveSeller := view.LatestRivalPrice()
	if !haveSeller {
		return core.ProposeDecision(anchor), nil
	}

	// Zero walk-away margin: anything above budget is a dealbreaker.
	if sellerPrice > budget {
		return core.WalkAwayDecision(), nil
	}

	reference := anchor
	if lastOwn, ok := view.LastOwn(); ok {
		reference = lastOwn.Price
	}

	if sellerPrice <= reference*(1+h.opts.AcceptanceTolerance) {
		return core.AcceptDecision(sellerPrice), nil
	}

	next := clampBuyer(reference+h.opts.ConcessionRate*(budget-reference), budget)
	if next >= sellerPrice {
		return core.AcceptDecision(sellerPrice), nil
	}
	return core.ProposeDecision(next), nil
}
