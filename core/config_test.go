package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"zero budget", func(c *Config) { c.BuyerBudget = 0 }, "buyer_budget"},
		{"negative reserve", func(c *Config) { c.SellerReserve = -1 }, "seller_reserve"},
		{"zero max turns", func(c *Config) { c.MaxTurns = 0 }, "max_turns"},
		{"discount out of range", func(c *Config) { c.Curve.InitialDiscount = 1 }, "curve.initial_discount"},
		{"negative tolerance", func(c *Config) { c.Curve.AcceptanceTolerance = -0.1 }, "curve.acceptance_tolerance"},
		{"negative margin", func(c *Config) { c.Curve.WalkAwayMargin = -0.1 }, "curve.walk_away_margin"},
		{"zero growth", func(c *Config) { c.Curve.ConcessionGrowth = 0 }, "curve.concession_growth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(100, 70)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantErr, cfgErr.Field)
		})
	}
}

func TestConfig_BudgetBelowReserveIsValid(t *testing.T) {
	// An impossible negotiation is still a valid configuration; the turn cap
	// guarantees it terminates as a walk-away.
	cfg := DefaultConfig(50, 200)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LimitFor(t *testing.T) {
	cfg := DefaultConfig(100, 70)
	assert.Equal(t, 100.0, cfg.LimitFor(Buyer))
	assert.Equal(t, 70.0, cfg.LimitFor(Seller))
}
