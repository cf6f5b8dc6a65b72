package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/evaluation"
)

// Options configures a Reporter using the functional options pattern.
type Options struct {
	// Writer receives the rendered output. Defaults to os.Stdout.
	Writer io.Writer
}

// Reporter renders session transcripts and batch summaries as styled terminal
// text. It holds no mutable state beyond its writer and is safe to reuse
// across sessions.
type Reporter struct {
	w io.Writer

	header  lipgloss.Style
	buyer   lipgloss.Style
	seller  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// New creates a Reporter with optional configuration.
func New(optFns ...func(o *Options)) *Reporter {
	opts := Options{
		Writer: os.Stdout,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Reporter{
		w:       opts.Writer,
		header:  lipgloss.NewStyle().Bold(true),
		buyer:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		seller:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Transcript writes the turn-by-turn history of a finished session followed by
// its outcome line.
func (r *Reporter) Transcript(result core.Result) error {
	if _, err := fmt.Fprintln(r.w, r.header.Render(fmt.Sprintf("Session %s", result.SessionID))); err != nil {
		return err
	}

	for _, offer := range result.History {
		style := r.buyer
		if offer.Party == core.Seller {
			style = r.seller
		}

		var line string
		switch offer.Action {
		case core.Propose:
			line = fmt.Sprintf("  [%2d] %s offers %.2f", offer.Turn, offer.Party, offer.Price)
		case core.Accept:
			line = fmt.Sprintf("  [%2d] %s accepts at %.2f", offer.Turn, offer.Party, offer.Price)
		case core.WalkAway:
			line = fmt.Sprintf("  [%2d] %s walks away", offer.Turn, offer.Party)
		}
		if _, err := fmt.Fprintln(r.w, style.Render(line)); err != nil {
			return err
		}
	}

	return r.outcome(result)
}

func (r *Reporter) outcome(result core.Result) error {
	var line string
	switch result.Outcome {
	case core.StatusClosed:
		line = r.success.Render(fmt.Sprintf("  deal closed at %.2f after %d turns", result.ClosingPrice, result.TotalTurns))
	case core.StatusWalkedAway:
		line = r.failure.Render(fmt.Sprintf("  no deal after %d turns", result.TotalTurns))
	default:
		line = r.muted.Render("  session still active")
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// Metrics writes a single session's evaluation as one line, suitable for
// tabulating batch runs.
func (r *Reporter) Metrics(name string, m evaluation.Metrics) error {
	if !m.DealClosed {
		_, err := fmt.Fprintln(r.w, r.failure.Render(fmt.Sprintf("%-20s no deal (%d turns)", name, m.TotalTurns)))
		return err
	}
	_, err := fmt.Fprintln(r.w, r.success.Render(
		fmt.Sprintf("%-20s closed at %.2f, saved %.1f%% (%d turns)", name, m.ClosingPrice, m.SavingsPct, m.TotalTurns)))
	return err
}

// Summary writes the aggregate view of a batch run.
func (r *Reporter) Summary(s evaluation.Summary) error {
	if _, err := fmt.Fprintln(r.w, r.header.Render("Summary")); err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("  sessions:       %d", s.Sessions),
		fmt.Sprintf("  deals closed:   %d (%.1f%%)", s.Deals, s.DealRate),
		fmt.Sprintf("  avg turns:      %.1f", s.AvgTurns),
	}
	if s.Deals > 0 {
		lines = append(lines,
			fmt.Sprintf("  avg price:      %.2f", s.AvgClosingPrice),
			fmt.Sprintf("  avg savings:    %.1f%%", s.AvgSavingsPct),
			fmt.Sprintf("  best price:     %.2f", s.BestClosingPrice),
		)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}
