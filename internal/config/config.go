// Package config loads the haggle CLI configuration via viper, layering
// defaults, an optional config file and HAGGLE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hupe1980/haggle/core"
)

// Config represents the complete haggle CLI configuration.
type Config struct {
	Session    SessionConfig    `mapstructure:"session"`
	Curve      core.CurveParams `mapstructure:"curve"`
	Strategies StrategyConfig   `mapstructure:"strategies"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SessionConfig carries the negotiation parameters.
type SessionConfig struct {
	// Budget is the buyer's private maximum acceptable price.
	Budget float64 `mapstructure:"budget"`
	// Reserve is the seller's private minimum acceptable price.
	Reserve float64 `mapstructure:"reserve"`
	// MaxTurns caps the total number of turns per session.
	MaxTurns int `mapstructure:"max_turns"`
	// FirstMover selects which party opens: "buyer" or "seller".
	FirstMover string `mapstructure:"first_mover"`
}

// StrategyConfig selects the contending policies by name.
type StrategyConfig struct {
	// Buyer is one of: diplomat, hardball, patient, greedy.
	Buyer string `mapstructure:"buyer"`
	// Seller is one of: firm, gradual.
	Seller string `mapstructure:"seller"`
}

// EngineConfig controls batch execution.
type EngineConfig struct {
	// MaxConcurrentSessions bounds tournament parallelism (0 = unlimited).
	MaxConcurrentSessions int `mapstructure:"max_concurrent_sessions"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is one of: debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Budget:     100,
			Reserve:    70,
			MaxTurns:   10,
			FirstMover: "buyer",
		},
		Curve: core.DefaultCurve,
		Strategies: StrategyConfig{
			Buyer:  "diplomat",
			Seller: "gradual",
		},
		Engine: EngineConfig{
			MaxConcurrentSessions: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("session.budget", defaults.Session.Budget)
	viper.SetDefault("session.reserve", defaults.Session.Reserve)
	viper.SetDefault("session.max_turns", defaults.Session.MaxTurns)
	viper.SetDefault("session.first_mover", defaults.Session.FirstMover)

	viper.SetDefault("curve.initial_discount", defaults.Curve.InitialDiscount)
	viper.SetDefault("curve.acceptance_tolerance", defaults.Curve.AcceptanceTolerance)
	viper.SetDefault("curve.walk_away_margin", defaults.Curve.WalkAwayMargin)
	viper.SetDefault("curve.concession_growth", defaults.Curve.ConcessionGrowth)

	viper.SetDefault("strategies.buyer", defaults.Strategies.Buyer)
	viper.SetDefault("strategies.seller", defaults.Strategies.Seller)

	viper.SetDefault("engine.max_concurrent_sessions", defaults.Engine.MaxConcurrentSessions)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads the configuration from viper into a Config struct and validates
// the session parameters.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, err := cfg.SessionConfig(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SessionConfig converts the loaded values into a validated core.Config.
func (c *Config) SessionConfig() (core.Config, error) {
	var firstMover core.Party
	switch c.Session.FirstMover {
	case "buyer":
		firstMover = core.Buyer
	case "seller":
		firstMover = core.Seller
	default:
		return core.Config{}, fmt.Errorf("invalid first_mover %q: must be buyer or seller", c.Session.FirstMover)
	}

	cfg := core.Config{
		BuyerBudget:   c.Session.Budget,
		SellerReserve: c.Session.Reserve,
		FirstMover:    firstMover,
		MaxTurns:      c.Session.MaxTurns,
		Curve:         c.Curve,
	}
	return cfg, cfg.Validate()
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "haggle")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".haggle"
	}
	return filepath.Join(home, ".config", "haggle")
}
