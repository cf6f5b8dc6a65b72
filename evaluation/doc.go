// Package evaluation scores finished negotiation sessions.
//
// An Evaluator turns a single session outcome into Metrics (deal or no deal,
// savings against the buyer's budget, turns used), and Summarize aggregates
// metrics across a batch into a Summary suitable for comparing strategies.
package evaluation
