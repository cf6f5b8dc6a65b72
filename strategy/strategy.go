package strategy

import (
	"context"
	"fmt"

	"github.com/hupe1980/haggle/core"
)

// Strategy is the minimal interface a negotiation policy must satisfy. Decide
// maps the read-only view of the negotiation to the party's next action.
//
// Conforming implementations must:
//   - be deterministic functions of the view (ModelStrategy is the documented
//     exception and is unsuitable for reproducible runs)
//   - never propose past their own limit (buyer above budget, seller below
//     reserve); the session aborts on such proposals
//   - only accept the counterpart's most recent proposed price
//
// The context is passed for the benefit of strategies that perform blocking
// work (e.g. ModelStrategy); pure policies ignore it.
type Strategy interface {
	// Name identifies the policy in logs, transcripts and registries.
	Name() string

	// Decide returns the next action for the party the view was built for.
	Decide(ctx context.Context, view core.Context) (core.Decision, error)
}

// errWrongSide is the uniform error for a policy asked to act for the side it
// was not written for.
func errWrongSide(name string, want, got core.Party) error {
	return fmt.Errorf("strategy %s acts for the %s, got a %s view", name, want, got)
}

// clampBuyer bounds a buyer proposal into (0, budget].
func clampBuyer(price, budget float64) float64 {
	if price > budget {
		return budget
	}
	return price
}

// clampSeller bounds a seller proposal to >= reserve.
func clampSeller(price, reserve float64) float64 {
	if price < reserve {
		return reserve
	}
	return price
}
