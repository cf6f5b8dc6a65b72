package model

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/haggle/core"
)

// Request captures the normalized advisor input built by the strategy layer.
type Request struct {
	// Party is the side the advice is for.
	Party core.Party `json:"party"`
	// Limit is the acting party's private budget or reserve. It is shared with
	// the model but never enters the transcript.
	Limit float64 `json:"limit"`
	// Turn is the current turn number.
	Turn int `json:"turn"`
	// History holds the offer transcript so far.
	History []core.Offer `json:"history"`
}

// Advice is the structured decision returned by an advisor.
type Advice struct {
	Action    string  `json:"action"` // "propose", "accept" or "walk_away"
	Price     float64 `json:"price,omitempty"`
	Rationale string  `json:"rationale,omitempty"`
}

// Info contains metadata about an advisor implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Advisor is the minimal interface required by the LLM-advised strategy.
type Advisor interface {
	Advise(ctx context.Context, req Request) (*Advice, error)

	// Info returns information about the advisor implementation.
	Info() Info
}

// BuildPrompt renders a request into the shared prompt format used by all
// provider adapters: a role framing, the transcript and a strict JSON reply
// instruction.
func BuildPrompt(req Request) string {
	var b strings.Builder
	if req.Party == core.Buyer {
		fmt.Fprintf(&b, "You are the buyer in a price negotiation. Your private maximum budget is %.2f; never propose above it.\n", req.Limit)
	} else {
		fmt.Fprintf(&b, "You are the seller in a price negotiation. Your private minimum reserve is %.2f; never propose below it.\n", req.Limit)
	}
	fmt.Fprintf(&b, "It is turn %d. Transcript so far:\n", req.Turn)
	if len(req.History) == 0 {
		b.WriteString("(no offers yet; you open)\n")
	}
	for _, o := range req.History {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	b.WriteString("\nReply with a single JSON object and nothing else: ")
	b.WriteString(`{"action":"propose"|"accept"|"walk_away","price":<number>,"rationale":"<short>"}. `)
	b.WriteString(`An "accept" must use the counterpart's most recent proposed price.`)
	return b.String()
}

// ParseAdvice extracts the structured decision from a raw model reply. It
// tolerates markdown code fences and surrounding prose by scanning for the
// outermost JSON object.
func ParseAdvice(raw string) (*Advice, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in advisor reply %q", raw)
	}
	var advice Advice
	if err := json.Unmarshal([]byte(raw[start:end+1]), &advice); err != nil {
		return nil, fmt.Errorf("decode advisor reply: %w", err)
	}
	switch advice.Action {
	case "propose", "accept", "walk_away":
	default:
		return nil, fmt.Errorf("advisor returned unknown action %q", advice.Action)
	}
	return &advice, nil
}

// MockAdvisor is a lightweight in-memory Advisor useful for tests & examples.
// It replays a scripted sequence of advices, repeating the final one once the
// script is exhausted.
type MockAdvisor struct {
	info   Info
	script []Advice
	calls  int
}

// NewMockAdvisor constructs a MockAdvisor replaying the given script.
func NewMockAdvisor(script ...Advice) *MockAdvisor {
	return &MockAdvisor{
		info:   Info{Name: "mock", Provider: "mock"},
		script: script,
	}
}

// Advise implements Advisor.
func (m *MockAdvisor) Advise(_ context.Context, _ Request) (*Advice, error) {
	if len(m.script) == 0 {
		return nil, fmt.Errorf("mock advisor has no scripted advice")
	}
	idx := m.calls
	if idx >= len(m.script) {
		idx = len(m.script) - 1
	}
	m.calls++
	advice := m.script[idx]
	return &advice, nil
}

// Info implements Advisor.
func (m *MockAdvisor) Info() Info { return m.info }
