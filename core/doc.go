// Package core provides the foundational domain types, interfaces and
// contracts used by haggle. It defines the core abstractions for:
//
//   - Offers (immutable records of one party's proposal at one turn)
//   - Decisions (the next action a strategy chooses: propose, accept, walk away)
//   - Contexts (the read-only view a strategy receives on its turn)
//   - Sessions (the negotiation state machine owning the turn history)
//   - Config (session parameters and the concession curve)
//   - Pluggable stores for archiving finished sessions
//
// The package intentionally keeps implementation concerns (orchestration,
// concrete strategies, persistence backends, rendering) out of scope, exposing
// small interfaces so higher layers can be swapped without touching the
// negotiation contracts.
package core
