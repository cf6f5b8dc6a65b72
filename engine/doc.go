// Package engine orchestrates negotiation sessions. It owns the turn loop
// that alternates Decide calls between the buyer and seller strategies,
// enforces the session turn cap, archives finished sessions and supports
// bounded-concurrency batch runs over independent scenarios.
//
// The engine never makes pricing decisions itself: strategies decide, the
// session state machine validates, the engine only drives and observes. Each
// session is driven synchronously on one goroutine; batch runs parallelize
// across sessions, never within one.
package engine
