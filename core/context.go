package core

// Context is the read-only view a strategy receives on its turn. It carries the
// shared offer history, the acting party's private limit and the current turn
// number. The counterpart's limit is never part of the view; strategies may
// only reason over the counterpart's observable prices.
//
// History is a defensive copy; mutating it has no effect on the session.
type Context struct {
	// History holds all prior offers in turn order.
	History []Offer
	// Party is the side this view was built for.
	Party Party
	// Limit is the acting party's private constraint: the buyer's maximum
	// budget or the seller's minimum reserve.
	Limit float64
	// Turn is the index the next appended offer will carry.
	Turn int
}

// LastFrom returns the most recent offer authored by p, if any.
func (c Context) LastFrom(p Party) (Offer, bool) {
	for i := len(c.History) - 1; i >= 0; i-- {
		if c.History[i].Party == p {
			return c.History[i], true
		}
	}
	return Offer{}, false
}

// LastOwn returns the acting party's most recent offer, if any.
func (c Context) LastOwn() (Offer, bool) { return c.LastFrom(c.Party) }

// LatestRivalPrice returns the counterpart's most recent proposed price. The
// boolean is false when the counterpart has not proposed yet (e.g. on the very
// first move of the session).
func (c Context) LatestRivalPrice() (float64, bool) {
	for i := len(c.History) - 1; i >= 0; i-- {
		o := c.History[i]
		if o.Party == c.Party.Rival() && o.Action == Propose {
			return o.Price, true
		}
	}
	return 0, false
}

// OwnOfferCount reports how many proposals the acting party has made so far.
// Strategies use it for time-based concession scaling.
func (c Context) OwnOfferCount() int {
	n := 0
	for _, o := range c.History {
		if o.Party == c.Party && o.Action == Propose {
			n++
		}
	}
	return n
}
