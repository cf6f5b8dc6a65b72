package strategy

import (
	"context"

	"github.com/hupe1980/haggle/core"
)

// FirmSellerOptions configures the FirmSeller.
type FirmSellerOptions struct {
	// OpeningMarkup sets the opening ask: reserve * (1 + OpeningMarkup).
	OpeningMarkup float64
	// ProfitMargin is the surplus over reserve at which any buyer offer is
	// accepted outright.
	ProfitMargin float64
	// CounterMarkup is the factor applied to the buyer's offer when countering.
	CounterMarkup float64
	// ClosingMarkup replaces CounterMarkup once SoftenAfter turns have passed.
	ClosingMarkup float64
	// SoftenAfter is the session turn index from which counters soften.
	SoftenAfter int
}

// FirmSeller counters with a fixed markup over the buyer's offer, floored at
// its reserve, and softens the markup late in the session. It never walks away
// on its own; an unbridgeable gap resolves through the session turn cap.
type FirmSeller struct {
	opts FirmSellerOptions
}

// NewFirmSeller constructs a FirmSeller. Defaults: 50% opening markup, accepts
// at 10% over reserve, counters at 15% over the buyer's offer softening to 5%
// from turn 8.
func NewFirmSeller(optFns ...func(o *FirmSellerOptions)) *FirmSeller {
	opts := FirmSellerOptions{
		OpeningMarkup: 0.50,
		ProfitMargin:  0.10,
		CounterMarkup: 0.15,
		ClosingMarkup: 0.05,
		SoftenAfter:   8,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &FirmSeller{opts: opts}
}

// Name implements Strategy.
func (f *FirmSeller) Name() string { return "firm_seller" }

// Decide implements Strategy for the seller side.
func (f *FirmSeller) Decide(_ context.Context, view core.Context) (core.Decision, error) {
	if view.Party != core.Seller {
		return core.Decision{}, errWrongSide(f.Name(), core.Seller, view.Party)
	}

	reserve := view.Limit

	buyerPrice, haveBuyer := view.LatestRivalPrice()
	if !haveBuyer {
		return core.ProposeDecision(reserve * (1 + f.opts.OpeningMarkup)), nil
	}

	if buyerPrice >= reserve*(1+f.opts.ProfitMargin) {
		return core.AcceptDecision(buyerPrice), nil
	}

	markup := f.opts.CounterMarkup
	if view.Turn >= f.opts.SoftenAfter {
		markup = f.opts.ClosingMarkup
	}
	return core.ProposeDecision(clampSeller(buyerPrice*(1+markup), reserve)), nil
}

// GradualSellerOptions configures the GradualSeller.
type GradualSellerOptions struct {
	// OpeningMarkup sets the opening ask: reserve * (1 + OpeningMarkup).
	OpeningMarkup float64
	// Horizon is the number of own proposals the seller plans to spread its
	// concessions over.
	Horizon int
	// ClosingConcession is the fraction of reserve still acceptable on the
	// final planned round (a last-chance discount before walking).
	ClosingConcession float64
}

// GradualSeller lowers its ask a little every round, spreading the distance
// from its opening ask to its reserve across the planned horizon. Past the
// horizon it takes any standing offer within the closing concession of its
// reserve, otherwise it walks. Its "current ask" is derived from its own last
// offer in the history, keeping Decide pure.
type GradualSeller struct {
	opts GradualSellerOptions
}

// NewGradualSeller constructs a GradualSeller. Defaults: 45% opening markup, a
// ten-round horizon and a 90% closing concession.
func NewGradualSeller(optFns ...func(o *GradualSellerOptions)) *GradualSeller {
	opts := GradualSellerOptions{
		OpeningMarkup:     0.45,
		Horizon:           10,
		ClosingConcession: 0.90,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &GradualSeller{opts: opts}
}

// Name implements Strategy.
func (g *GradualSeller) Name() string { return "gradual_seller" }

// Decide implements Strategy for the seller side.
func (g *GradualSeller) Decide(_ context.Context, view core.Context) (core.Decision, error) {
	if view.Party != core.Seller {
		return core.Decision{}, errWrongSide(g.Name(), core.Seller, view.Party)
	}

	reserve := view.Limit
	buyerPrice, haveBuyer := view.LatestRivalPrice()

	if haveBuyer && buyerPrice >= reserve {
		return core.AcceptDecision(buyerPrice), nil
	}

	lastOwn, haveOwn := view.LastOwn()
	if !haveOwn {
		return core.ProposeDecision(reserve * (1 + g.opts.OpeningMarkup)), nil
	}

	remaining := g.opts.Horizon - view.OwnOfferCount()
	if remaining <= 0 {
		// Last chance: take a slightly-below-reserve offer over no deal at all.
		// Limits constrain proposals, not accepts, so this stays within the
		// session contract.
		if haveBuyer && buyerPrice >= reserve*g.opts.ClosingConcession {
			return core.AcceptDecision(buyerPrice), nil
		}
		return core.WalkAwayDecision(), nil
	}

	concession := (lastOwn.Price - reserve) / float64(remaining+1)
	return core.ProposeDecision(clampSeller(lastOwn.Price-concession, reserve)), nil
}
