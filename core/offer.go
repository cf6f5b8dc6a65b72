package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Party identifies which side of the negotiation authored an offer.
type Party int

const (
	// Buyer is the party constrained by a maximum budget.
	Buyer Party = iota
	// Seller is the party constrained by a minimum reserve.
	Seller
)

// String returns the human-readable party name.
func (p Party) String() string {
	switch p {
	case Buyer:
		return "buyer"
	case Seller:
		return "seller"
	default:
		return "unknown"
	}
}

// Rival returns the opposing party.
func (p Party) Rival() Party {
	if p == Buyer {
		return Seller
	}
	return Buyer
}

// Action classifies what an offer record represents.
type Action int

const (
	// Propose puts a new price on the table.
	Propose Action = iota
	// Accept closes the deal at the counterpart's most recent proposed price.
	Accept
	// WalkAway terminates the session without a deal.
	WalkAway
)

// String returns the human-readable action name.
func (a Action) String() string {
	switch a {
	case Propose:
		return "propose"
	case Accept:
		return "accept"
	case WalkAway:
		return "walk_away"
	default:
		return "unknown"
	}
}

// Offer is an immutable record of one party's move at one turn. After being
// appended to a session it must be treated as read-only; all history accessors
// return copies so a past record can never be mutated through a live reference.
type Offer struct {
	Turn      int       `json:"turn"`
	Party     Party     `json:"party"`
	Price     float64   `json:"price,omitempty"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// String renders a compact single-line form used in logs and transcripts.
func (o Offer) String() string {
	switch o.Action {
	case Propose:
		return fmt.Sprintf("[%d] %s proposes %.2f", o.Turn, o.Party, o.Price)
	case Accept:
		return fmt.Sprintf("[%d] %s accepts %.2f", o.Turn, o.Party, o.Price)
	default:
		return fmt.Sprintf("[%d] %s walks away", o.Turn, o.Party)
	}
}

// Decision is a strategy's chosen next action. Use the constructors below; the
// zero value is not a valid decision.
type Decision struct {
	Action Action
	Price  float64
}

// ProposeDecision constructs a decision putting price on the table.
func ProposeDecision(price float64) Decision { return Decision{Action: Propose, Price: price} }

// AcceptDecision constructs a decision accepting the counterpart's most recent
// proposal. The price must match that proposal exactly; the session verifies it.
func AcceptDecision(price float64) Decision { return Decision{Action: Accept, Price: price} }

// WalkAwayDecision constructs a decision terminating without a deal.
func WalkAwayDecision() Decision { return Decision{Action: WalkAway} }

// NewID generates a new unique identifier for sessions.
func NewID() string { return uuid.NewString() }
