package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/haggle"
	"github.com/hupe1980/haggle/engine"
	"github.com/hupe1980/haggle/internal/config"
)

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Run every buyer policy against every seller policy",
	Long: `Run a full cross of buyer and seller policies under the configured
session parameters and print per-pairing results with an aggregate summary.`,
	RunE: runTournament,
}

func init() {
	rootCmd.AddCommand(tournamentCmd)
}

func runTournament(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return err
	}

	var scenarios []engine.Scenario
	for _, buyerName := range []string{"diplomat", "hardball", "patient", "greedy"} {
		buyer, err := buyerByName(buyerName, sessionCfg.Curve)
		if err != nil {
			return err
		}
		for _, sellerName := range []string{"firm", "gradual"} {
			seller, err := sellerByName(sellerName)
			if err != nil {
				return err
			}
			scenarios = append(scenarios, engine.Scenario{
				Name:   buyerName + " vs " + sellerName,
				Config: sessionCfg,
				Buyer:  buyer,
				Seller: seller,
			})
		}
	}

	h := haggle.New(func(o *haggle.Options) {
		o.EngineConfig = engine.Config{MaxConcurrentSessions: cfg.Engine.MaxConcurrentSessions}
		o.Logger = newLogger(cfg)
	})

	outcomes, summary, err := h.NegotiateAll(cmd.Context(), scenarios)
	if err != nil {
		return err
	}

	reporter := newReporter(cmd)
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s error: %v\n", outcome.Scenario.Name, outcome.Err)
			continue
		}
		if err := reporter.Metrics(outcome.Scenario.Name, *outcome.Metrics); err != nil {
			return err
		}
	}

	return reporter.Summary(summary)
}
