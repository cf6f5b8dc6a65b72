// Package testutil provides shared helpers for constructing negotiation
// fixtures in tests.
package testutil

import (
	"time"

	"github.com/hupe1980/haggle/core"
)

// HistoryBuilder provides a fluent helper for constructing offer histories in
// tests. Example:
//
//	view := NewHistoryBuilder().Buyer(80).Seller(150).ViewFor(core.Buyer, 100)
//
// Turn indices and timestamps are assigned automatically in append order.
type HistoryBuilder struct {
	offers []core.Offer
}

// NewHistoryBuilder creates an empty builder.
func NewHistoryBuilder() *HistoryBuilder { return &HistoryBuilder{} }

// Buyer appends a buyer proposal at the given price (chainable).
func (b *HistoryBuilder) Buyer(price float64) *HistoryBuilder {
	return b.append(core.Buyer, price, core.Propose)
}

// Seller appends a seller proposal at the given price (chainable).
func (b *HistoryBuilder) Seller(price float64) *HistoryBuilder {
	return b.append(core.Seller, price, core.Propose)
}

// Accept appends an accept record by the given party (chainable).
func (b *HistoryBuilder) Accept(party core.Party, price float64) *HistoryBuilder {
	return b.append(party, price, core.Accept)
}

// WalkAway appends a walk-away record by the given party (chainable).
func (b *HistoryBuilder) WalkAway(party core.Party) *HistoryBuilder {
	return b.append(party, 0, core.WalkAway)
}

// Build returns the accumulated history.
func (b *HistoryBuilder) Build() []core.Offer {
	offers := make([]core.Offer, len(b.offers))
	copy(offers, b.offers)
	return offers
}

// ViewFor builds a strategy view over the accumulated history for the given
// party and private limit.
func (b *HistoryBuilder) ViewFor(party core.Party, limit float64) core.Context {
	return core.Context{
		History: b.Build(),
		Party:   party,
		Limit:   limit,
		Turn:    len(b.offers),
	}
}

func (b *HistoryBuilder) append(party core.Party, price float64, action core.Action) *HistoryBuilder {
	b.offers = append(b.offers, core.Offer{
		Turn:      len(b.offers),
		Party:     party,
		Price:     price,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
	return b
}
