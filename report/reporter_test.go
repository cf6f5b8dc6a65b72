package report

import (
	"bytes"
	"testing"

	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Transcript(t *testing.T) {
	var buf bytes.Buffer
	r := New(func(o *Options) { o.Writer = &buf })

	result := core.Result{
		SessionID: "abc",
		Outcome:   core.StatusClosed,
		History: []core.Offer{
			{Turn: 1, Party: core.Buyer, Price: 80, Action: core.Propose},
			{Turn: 2, Party: core.Seller, Price: 95, Action: core.Propose},
			{Turn: 3, Party: core.Buyer, Price: 95, Action: core.Accept},
		},
		ClosingPrice: 95,
		TotalTurns:   3,
	}

	require.NoError(t, r.Transcript(result))

	out := buf.String()
	assert.Contains(t, out, "Session abc")
	assert.Contains(t, out, "offers 80.00")
	assert.Contains(t, out, "offers 95.00")
	assert.Contains(t, out, "accepts at 95.00")
	assert.Contains(t, out, "deal closed at 95.00 after 3 turns")
}

func TestReporter_TranscriptWalkAway(t *testing.T) {
	var buf bytes.Buffer
	r := New(func(o *Options) { o.Writer = &buf })

	result := core.Result{
		SessionID: "def",
		Outcome:   core.StatusWalkedAway,
		History: []core.Offer{
			{Turn: 1, Party: core.Buyer, Price: 80, Action: core.Propose},
			{Turn: 2, Party: core.Seller, Price: 300, Action: core.Propose},
			{Turn: 3, Party: core.Buyer, Action: core.WalkAway},
		},
		TotalTurns: 3,
	}

	require.NoError(t, r.Transcript(result))

	out := buf.String()
	assert.Contains(t, out, "walks away")
	assert.Contains(t, out, "no deal after 3 turns")
}

func TestReporter_Metrics(t *testing.T) {
	var buf bytes.Buffer
	r := New(func(o *Options) { o.Writer = &buf })

	require.NoError(t, r.Metrics("deal", evaluation.Metrics{
		DealClosed: true, ClosingPrice: 85, SavingsPct: 15, TotalTurns: 6,
	}))
	require.NoError(t, r.Metrics("standoff", evaluation.Metrics{TotalTurns: 10}))

	out := buf.String()
	assert.Contains(t, out, "closed at 85.00")
	assert.Contains(t, out, "saved 15.0%")
	assert.Contains(t, out, "no deal (10 turns)")
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := New(func(o *Options) { o.Writer = &buf })

	require.NoError(t, r.Summary(evaluation.Summary{
		Sessions:         4,
		Deals:            2,
		DealRate:         50,
		AvgClosingPrice:  85,
		AvgSavingsPct:    15,
		BestClosingPrice: 80,
		AvgTurns:         7,
	}))

	out := buf.String()
	assert.Contains(t, out, "sessions:       4")
	assert.Contains(t, out, "deals closed:   2 (50.0%)")
	assert.Contains(t, out, "best price:     80.00")
}

func TestReporter_SummaryNoDeals(t *testing.T) {
	var buf bytes.Buffer
	r := New(func(o *Options) { o.Writer = &buf })

	require.NoError(t, r.Summary(evaluation.Summary{Sessions: 2, AvgTurns: 10}))

	out := buf.String()
	assert.NotContains(t, out, "avg price")
	assert.Contains(t, out, "deals closed:   0 (0.0%)")
}
