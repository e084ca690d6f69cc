package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		Strategy:         StrategyFixedCashout,
		HouseEdge:        0.01,
		TargetMultiplier: 2.0,
		InitialBankroll:  1000,
		BaseBet:          10,
		Rounds:           100,
		Sessions:         1000,
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsMalformedConfig(t *testing.T) {
	cases := map[string]func(*SimulationConfig){
		"zero house edge":       func(c *SimulationConfig) { c.HouseEdge = 0 },
		"house edge of one":     func(c *SimulationConfig) { c.HouseEdge = 1 },
		"negative house edge":   func(c *SimulationConfig) { c.HouseEdge = -0.1 },
		"target below one":      func(c *SimulationConfig) { c.TargetMultiplier = 0.99 },
		"non-positive bankroll": func(c *SimulationConfig) { c.InitialBankroll = 0 },
		"non-positive base bet": func(c *SimulationConfig) { c.BaseBet = 0 },
		"zero rounds":           func(c *SimulationConfig) { c.Rounds = 0 },
		"zero sessions":         func(c *SimulationConfig) { c.Sessions = 0 },
	}

	for name, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument, name)
	}
}

func TestValidateChecksMartingaleParameters(t *testing.T) {
	cfg := validConfig()
	cfg.Strategy = StrategyMartingale
	cfg.MartingaleFactor = 2.0
	cfg.MaxLossStreak = 5
	assert.NoError(t, cfg.Validate())

	cfg.MartingaleFactor = 1.0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidArgument)

	cfg.MartingaleFactor = 2.0
	cfg.MaxLossStreak = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidArgument)
}
