package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/haggle"
	"github.com/hupe1980/haggle/engine"
	"github.com/hupe1980/haggle/evaluation"
	"github.com/hupe1980/haggle/internal/config"
	"github.com/hupe1980/haggle/logging"
	"github.com/hupe1980/haggle/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single negotiation session",
	Long: `Run one negotiation between the configured buyer and seller policies
and print the full transcript with the outcome.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64("budget", 0, "buyer's maximum acceptable price")
	runCmd.Flags().Float64("reserve", 0, "seller's minimum acceptable price")
	runCmd.Flags().Int("max-turns", 0, "turn cap per session")
	runCmd.Flags().String("first-mover", "", "party that opens: buyer or seller")
	runCmd.Flags().String("buyer", "", "buyer strategy (diplomat, hardball, patient, greedy)")
	runCmd.Flags().String("seller", "", "seller strategy (firm, gradual)")

	_ = viper.BindPFlag("session.budget", runCmd.Flags().Lookup("budget"))
	_ = viper.BindPFlag("session.reserve", runCmd.Flags().Lookup("reserve"))
	_ = viper.BindPFlag("session.max_turns", runCmd.Flags().Lookup("max-turns"))
	_ = viper.BindPFlag("session.first_mover", runCmd.Flags().Lookup("first-mover"))
	_ = viper.BindPFlag("strategies.buyer", runCmd.Flags().Lookup("buyer"))
	_ = viper.BindPFlag("strategies.seller", runCmd.Flags().Lookup("seller"))
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return err
	}

	buyer, err := buyerByName(cfg.Strategies.Buyer, sessionCfg.Curve)
	if err != nil {
		return err
	}
	seller, err := sellerByName(cfg.Strategies.Seller)
	if err != nil {
		return err
	}

	h := haggle.New(func(o *haggle.Options) {
		o.EngineConfig = engine.Config{MaxConcurrentSessions: cfg.Engine.MaxConcurrentSessions}
		o.Logger = newLogger(cfg)
	})

	result, err := h.Negotiate(cmd.Context(), sessionCfg, buyer, seller)
	if err != nil {
		return err
	}

	reporter := newReporter(cmd)
	if err := reporter.Transcript(*result); err != nil {
		return err
	}

	metrics, err := evaluation.NewBudgetEvaluator().Evaluate(evaluation.Invocation{
		Config: sessionCfg,
		Result: *result,
	})
	if err != nil {
		return err
	}
	return reporter.Metrics(cfg.Strategies.Buyer+" vs "+cfg.Strategies.Seller, *metrics)
}

func newReporter(cmd *cobra.Command) *report.Reporter {
	return report.New(func(o *report.Options) { o.Writer = cmd.OutOrStdout() })
}

func newLogger(cfg *config.Config) logging.Logger {
	level := logging.LogLevelInfo
	if viper.GetBool("verbose") {
		level = logging.LogLevelDebug
	} else {
		switch cfg.Logging.Level {
		case "debug":
			level = logging.LogLevelDebug
		case "warn":
			level = logging.LogLevelWarn
		case "error":
			level = logging.LogLevelError
		}
	}
	return logging.NewSlogLogger(level, cfg.Logging.Format, false)
}
