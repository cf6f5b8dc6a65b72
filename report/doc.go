// Package report renders negotiation transcripts and batch summaries for
// terminal output. Styling uses lipgloss and degrades gracefully on dumb
// terminals; rendering is side-effect free apart from writing to the
// configured io.Writer.
package report
