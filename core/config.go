package core

// CurveParams tunes the buyer's concession behavior. All fields are fractions;
// see the field comments for the exact effect on the reference strategy.
type CurveParams struct {
	// InitialDiscount is the gap between the buyer's anchor and its budget,
	// expressed as a fraction of budget. Anchor = budget * (1 - InitialDiscount).
	// Must be in [0, 1).
	InitialDiscount float64 `json:"initial_discount" mapstructure:"initial_discount"`

	// AcceptanceTolerance is the closeness threshold for accepting: a seller
	// price within (1 + AcceptanceTolerance) of the buyer's last offer (and
	// within budget) is accepted. Must be >= 0.
	AcceptanceTolerance float64 `json:"acceptance_tolerance" mapstructure:"acceptance_tolerance"`

	// WalkAwayMargin is how far past budget a counter-offer may reach before
	// the buyer terminates: prices above budget * (1 + WalkAwayMargin) force a
	// walk-away. Must be >= 0.
	WalkAwayMargin float64 `json:"walk_away_margin" mapstructure:"walk_away_margin"`

	// ConcessionGrowth controls how fast the concession rate rises with turn
	// number. Higher values close the remaining gap to budget sooner. Must
	// be > 0.
	ConcessionGrowth float64 `json:"concession_growth" mapstructure:"concession_growth"`
}

// DefaultCurve provides a balanced reference parameterization: a 20% anchor
// discount, 5% acceptance tolerance, 30% walk-away margin and moderate urgency
// growth.
var DefaultCurve = CurveParams{
	InitialDiscount:     0.20,
	AcceptanceTolerance: 0.05,
	WalkAwayMargin:      0.30,
	ConcessionGrowth:    0.35,
}

// Validate checks the curve parameters, returning a ConfigError on the first
// malformed field.
func (p CurveParams) Validate() error {
	if p.InitialDiscount < 0 || p.InitialDiscount >= 1 {
		return &ConfigError{Field: "curve.initial_discount", Reason: "must be in [0, 1)"}
	}
	if p.AcceptanceTolerance < 0 {
		return &ConfigError{Field: "curve.acceptance_tolerance", Reason: "must be >= 0"}
	}
	if p.WalkAwayMargin < 0 {
		return &ConfigError{Field: "curve.walk_away_margin", Reason: "must be >= 0"}
	}
	if p.ConcessionGrowth <= 0 {
		return &ConfigError{Field: "curve.concession_growth", Reason: "must be > 0"}
	}
	return nil
}

// Config carries all session parameters. It is validated once at session
// construction; a session never fails on configuration grounds mid-run.
//
// Note that BuyerBudget below SellerReserve is a valid configuration: it is a
// negotiation that cannot close, and the turn cap guarantees it still
// terminates in a WalkedAway outcome.
type Config struct {
	// BuyerBudget is the buyer's private maximum acceptable price. Must be > 0.
	BuyerBudget float64 `json:"buyer_budget" mapstructure:"buyer_budget"`

	// SellerReserve is the seller's private minimum acceptable price. Must be > 0.
	SellerReserve float64 `json:"seller_reserve" mapstructure:"seller_reserve"`

	// FirstMover selects which party opens the session.
	FirstMover Party `json:"first_mover" mapstructure:"first_mover"`

	// MaxTurns caps the total number of appended offers. Reaching it while
	// still active resolves deterministically as a forced walk-away. Must be >= 1.
	MaxTurns int `json:"max_turns" mapstructure:"max_turns"`

	// Curve parameterizes the buyer's concession behavior.
	Curve CurveParams `json:"curve" mapstructure:"curve"`
}

// DefaultConfig returns a ready-to-run ten-turn buyer-first configuration with
// the given budget and reserve.
func DefaultConfig(budget, reserve float64) Config {
	return Config{
		BuyerBudget:   budget,
		SellerReserve: reserve,
		FirstMover:    Buyer,
		MaxTurns:      10,
		Curve:         DefaultCurve,
	}
}

// LimitFor returns the private limit belonging to p.
func (c Config) LimitFor(p Party) float64 {
	if p == Buyer {
		return c.BuyerBudget
	}
	return c.SellerReserve
}

// Validate checks all session parameters, returning a ConfigError on the first
// malformed field.
func (c Config) Validate() error {
	if c.BuyerBudget <= 0 {
		return &ConfigError{Field: "buyer_budget", Reason: "must be > 0"}
	}
	if c.SellerReserve <= 0 {
		return &ConfigError{Field: "seller_reserve", Reason: "must be > 0"}
	}
	if c.FirstMover != Buyer && c.FirstMover != Seller {
		return &ConfigError{Field: "first_mover", Reason: "must be buyer or seller"}
	}
	if c.MaxTurns < 1 {
		return &ConfigError{Field: "max_turns", Reason: "must be >= 1"}
	}
	return c.Curve.Validate()
}
