// Package model defines the provider-neutral Advisor abstraction used by the
// LLM-advised negotiation strategy, plus a deterministic mock for tests and
// offline demos. Provider adapters live in sub-packages (anthropic, openai) so
// the core negotiation packages never import an SDK.
//
// An advisor receives the structured transcript and the acting party's private
// limit and returns a structured decision (action + price), never free text
// into the transcript.
package model
