package strategy

import (
	"context"
	"math"

	"github.com/hupe1980/haggle/core"
)

// Diplomat is the reference buyer policy ("Data-Driven Diplomat"). It moves
// through three phases driven by turn number and the gap to budget:
//
//	Anchor:    open below budget by the configured initial discount
//	Concede:   close a growing fraction of the remaining gap to budget each
//	           turn, accepting once the seller lands within tolerance
//	Walk-Away: terminate when the seller stays past the walk-away margin
//
// The concession rate 1 - exp(-growth * t) over the buyer's own turn count t
// is monotone nondecreasing and bounded below 1, so the offer sequence is
// non-decreasing and converges to, but never exceeds, budget. Decide is a pure
// function of the view, which makes runs reproducible.
type Diplomat struct {
	curve core.CurveParams
}

// NewDiplomat constructs the reference buyer policy with the given concession
// curve.
func NewDiplomat(curve core.CurveParams) *Diplomat {
	return &Diplomat{curve: curve}
}

// Name implements Strategy.
func (d *Diplomat) Name() string { return "diplomat" }

// Decide implements Strategy for the buyer side.
func (d *Diplomat) Decide(_ context.Context, view core.Context) (core.Decision, error) {
	if view.Party != core.Buyer {
		return core.Decision{}, errWrongSide(d.Name(), core.Buyer, view.Party)
	}

	budget := view.Limit
	anchor := budget * (1 - d.curve.InitialDiscount)

	sellerPrice, haveSeller := view.LatestRivalPrice()
	if !haveSeller {
		// Opening move; nothing to react to yet.
		return core.ProposeDecision(anchor), nil
	}

	// Terminal guard runs before any concession.
	if sellerPrice > budget*(1+d.curve.WalkAwayMargin) {
		return core.WalkAwayDecision(), nil
	}

	reference := anchor
	lastOwn, haveOwn := view.LastOwn()
	if haveOwn {
		reference = lastOwn.Price
	}

	if sellerPrice <= budget && sellerPrice <= reference*(1+d.curve.AcceptanceTolerance) {
		return core.AcceptDecision(sellerPrice), nil
	}

	if !haveOwn {
		// Seller opened out of tolerance; anchor first, concede later.
		return core.ProposeDecision(anchor), nil
	}

	rate := d.concessionRate(view.OwnOfferCount())
	next := clampBuyer(reference+rate*(budget-reference), budget)
	if next < reference {
		next = reference
	}

	// Crossing the seller's price within budget means agreement, not overbidding.
	if sellerPrice <= budget && next >= sellerPrice {
		return core.AcceptDecision(sellerPrice), nil
	}

	return core.ProposeDecision(next), nil
}

// concessionRate maps the buyer's own turn count to the fraction of the
// remaining gap conceded this turn. Monotone nondecreasing, bounded in [0, 1).
func (d *Diplomat) concessionRate(turn int) float64 {
	return 1 - math.Exp(-d.curve.ConcessionGrowth*float64(turn))
}
