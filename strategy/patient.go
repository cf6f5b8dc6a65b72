package strategy

import (
	"context"

	"github.com/hupe1980/haggle/core"
)

// PatientOptions configures the Patient buyer.
type PatientOptions struct {
	// InitialDiscount is the anchor gap as a fraction of budget.
	InitialDiscount float64
	// BaseRate is the concession rate on the first counter.
	BaseRate float64
	// RateSlope is the per-turn linear increase of the concession rate.
	RateSlope float64
	// MaxRate caps the concession rate.
	MaxRate float64
	// AcceptanceTolerance is the closeness threshold for accepting.
	AcceptanceTolerance float64
	// WalkAwayMargin is how far past budget a counter-offer may reach before
	// the buyer terminates.
	WalkAwayMargin float64
}

// Patient is a slow-burn buyer: it concedes in small linearly growing steps
// and tolerates high asks for a long time, relying on the session turn cap to
// bound the exchange. Against a conceding seller it tends to close late but
// cheap.
type Patient struct {
	opts PatientOptions
}

// NewPatient constructs a Patient buyer. Defaults: 25% anchor discount, rate
// ramping 4% + 2%/turn capped at 30%, 3% tolerance, 60% walk-away margin.
func NewPatient(optFns ...func(o *PatientOptions)) *Patient {
	opts := PatientOptions{
		InitialDiscount:     0.25,
		BaseRate:            0.04,
		RateSlope:           0.02,
		MaxRate:             0.30,
		AcceptanceTolerance: 0.03,
		WalkAwayMargin:      0.60,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Patient{opts: opts}
}

// Name implements Strategy.
func (p *Patient) Name() string { return "patient" }

// Decide implements Strategy for the buyer side.
func (p *Patient) Decide(_ context.Context, view core.Context) (core.Decision, error) {
	if view.Party != core.Buyer {
		return core.Decision{}, errWrongSide(p.Name(), core.Buyer, view.Party)
	}

	budget := view.Limit
	anchor := budget * (1 - p.opts.InitialDiscount)

	sellerPrice, haveSeller := view.LatestRivalPrice()
	if !haveSeller {
		return core.ProposeDecision(anchor), nil
	}

	if sellerPrice > budget*(1+p.opts.WalkAwayMargin) {
		return core.WalkAwayDecision(), nil
	}

	reference := anchor
	if lastOwn, ok := view.LastOwn(); ok {
		reference = lastOwn.Price
	}

	if sellerPrice <= budget && sellerPrice <= reference*(1+p.opts.AcceptanceTolerance) {
		return core.AcceptDecision(sellerPrice), nil
	}

	rate := p.opts.BaseRate + p.opts.RateSlope*float64(view.OwnOfferCount())
	if rate > p.opts.MaxRate {
		rate = p.opts.MaxRate
	}

	next := clampBuyer(reference+rate*(budget-reference), budget)
	if next < reference {
		next = reference
	}
	if sellerPrice <= budget && next >= sellerPrice {
		return core.AcceptDecision(sellerPrice), nil
	}
	return core.ProposeDecision(next), nil
}
