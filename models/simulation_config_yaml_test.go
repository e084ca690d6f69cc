package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// The scenarios file documents these keys; every one of them has to land in
// its field, or a compare run silently falls back to zero values.
func TestSimulationConfigYAMLKeys(t *testing.T) {
	document := `
- name: martingale capped
  strategy: martingale
  houseEdge: 0.02
  targetMultiplier: 3.0
  initialBankroll: 500
  baseBet: 5
  rounds: 200
  sessions: 2500
  martingaleFactor: 2.5
  maxLossStreak: 6
  resetOnCap: true
  seed: 42
  workers: 4
`

	var scenarios []SimulationConfig
	assert.NoError(t, yaml.Unmarshal([]byte(document), &scenarios))
	assert.Len(t, scenarios, 1)

	cfg := scenarios[0]
	assert.Equal(t, "martingale capped", cfg.Name)
	assert.Equal(t, StrategyMartingale, cfg.Strategy)
	assert.Equal(t, 0.02, cfg.HouseEdge)
	assert.Equal(t, 3.0, cfg.TargetMultiplier)
	assert.Equal(t, 500.0, cfg.InitialBankroll)
	assert.Equal(t, 5.0, cfg.BaseBet)
	assert.Equal(t, 200, cfg.Rounds)
	assert.Equal(t, 2500, cfg.Sessions)
	assert.Equal(t, 2.5, cfg.MartingaleFactor)
	assert.Equal(t, 6, cfg.MaxLossStreak)
	assert.True(t, cfg.ResetOnCap)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 4, cfg.Workers)

	assert.NoError(t, cfg.Validate())
}

func TestSimulationConfigYAMLRoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Name = "fixed x2"
	cfg.Seed = 7

	encoded, err := yaml.Marshal([]SimulationConfig{cfg})
	assert.NoError(t, err)

	var decoded []SimulationConfig
	assert.NoError(t, yaml.Unmarshal(encoded, &decoded))
	assert.Equal(t, []SimulationConfig{cfg}, decoded)
}
