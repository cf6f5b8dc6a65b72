package model

import (
	"context"
	"testing"

	"github.com/hupe1980/haggle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdvice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Advice
		wantErr bool
	}{
		{
			name: "bare JSON",
			raw:  `{"action":"propose","price":85.5}`,
			want: Advice{Action: "propose", Price: 85.5},
		},
		{
			name: "fenced JSON with prose",
			raw:  "Here you go:\n```json\n{\"action\":\"accept\",\"price\":98,\"rationale\":\"within tolerance\"}\n```",
			want: Advice{Action: "accept", Price: 98, Rationale: "within tolerance"},
		},
		{
			name: "walk away without price",
			raw:  `{"action":"walk_away"}`,
			want: Advice{Action: "walk_away"},
		},
		{name: "no JSON", raw: "I would propose 85.", wantErr: true},
		{name: "unknown action", raw: `{"action":"haggle","price":85}`, wantErr: true},
		{name: "malformed JSON", raw: `{"action":"propose","price":}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice, err := ParseAdvice(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *advice)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := Request{
		Party: core.Buyer,
		Limit: 100,
		Turn:  2,
		History: []core.Offer{
			{Turn: 0, Party: core.Buyer, Price: 80, Action: core.Propose},
			{Turn: 1, Party: core.Seller, Price: 150, Action: core.Propose},
		},
	}

	prompt := BuildPrompt(req)
	assert.Contains(t, prompt, "buyer")
	assert.Contains(t, prompt, "100.00")
	assert.Contains(t, prompt, "[1] seller proposes 150.00")
	assert.Contains(t, prompt, `"action"`)
}

func TestBuildPrompt_EmptyHistory(t *testing.T) {
	prompt := BuildPrompt(Request{Party: core.Seller, Limit: 70})
	assert.Contains(t, prompt, "seller")
	assert.Contains(t, prompt, "no offers yet")
}

func TestMockAdvisor_ReplaysScript(t *testing.T) {
	advisor := NewMockAdvisor(
		Advice{Action: "propose", Price: 80},
		Advice{Action: "accept", Price: 95},
	)

	first, err := advisor.Advise(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "propose", first.Action)

	second, err := advisor.Advise(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "accept", second.Action)

	// Script exhausted: final advice repeats.
	third, err := advisor.Advise(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "accept", third.Action)
}

func TestMockAdvisor_EmptyScript(t *testing.T) {
	_, err := NewMockAdvisor().Advise(context.Background(), Request{})
	assert.Error(t, err)
}
