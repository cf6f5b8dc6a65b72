// Package strategy contains the negotiation policy contract and the concrete
// policies shipped with haggle. The package focuses on three concerns:
//
//  1. The Strategy interface, one Decide entry point per policy
//  2. Buyer policies (Diplomat, Hardball, Patient, Greedy)
//  3. Seller policies (FirmSeller, GradualSeller) and the LLM-advised
//     ModelStrategy usable on either side
//
// Design principles:
//   - Purity: built-in policies are deterministic functions of the view they
//     receive; per-session state is derived from the party's own prior offers
//     in the shared history rather than hidden fields
//   - Symmetry: seller policies satisfy the same interface as buyer policies,
//     so the session state machine never knows which side it is driving
//   - Safety: a policy never reads the counterpart's private limit, only its
//     observable historical prices
//
// Adding a policy means implementing Decide plus a constructor; the session
// state machine and engine are untouched.
package strategy
