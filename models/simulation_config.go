package models

import "fmt"

// Strategy names accepted by the factory
const (
	StrategyFixedCashout = "fixedCashout"
	StrategyMartingale   = "martingale"
	StrategyFibonacci    = "fibonacci"
	StrategyDAlembert    = "dalembert"
)

// SimulationConfig carries every parameter of one Monte Carlo run. It is
// input-only: the services never mutate it.
type SimulationConfig struct {
	Name             string  `json:"name,omitempty" yaml:"name,omitempty"`
	Strategy         string  `json:"strategy" yaml:"strategy"`
	HouseEdge        float64 `json:"houseEdge" yaml:"houseEdge"`
	TargetMultiplier float64 `json:"targetMultiplier" yaml:"targetMultiplier"`
	InitialBankroll  float64 `json:"initialBankroll" yaml:"initialBankroll"`
	BaseBet          float64 `json:"baseBet" yaml:"baseBet"`
	Rounds           int     `json:"rounds" yaml:"rounds"`
	Sessions         int     `json:"sessions" yaml:"sessions"`

	// Martingale only
	MartingaleFactor float64 `json:"martingaleFactor,omitempty" yaml:"martingaleFactor,omitempty"`
	MaxLossStreak    int     `json:"maxLossStreak,omitempty" yaml:"maxLossStreak,omitempty"`
	ResetOnCap       bool    `json:"resetOnCap,omitempty" yaml:"resetOnCap,omitempty"`

	// Seed 0 means "derive one from the clock when the run starts"
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Workers 0 means one worker per CPU
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Validate checks the configuration before any simulation starts. Every
// violation is reported as ErrInvalidArgument.
func (c *SimulationConfig) Validate() error {
	if c.HouseEdge <= 0 || c.HouseEdge >= 1 {
		return fmt.Errorf("%w: house edge %f must be inside (0, 1)", ErrInvalidArgument, c.HouseEdge)
	}
	if c.TargetMultiplier < 1 {
		return fmt.Errorf("%w: target multiplier %f must be >= 1", ErrInvalidArgument, c.TargetMultiplier)
	}
	if c.InitialBankroll <= 0 {
		return fmt.Errorf("%w: initial bankroll %f must be positive", ErrInvalidArgument, c.InitialBankroll)
	}
	if c.BaseBet <= 0 {
		return fmt.Errorf("%w: base bet %f must be positive", ErrInvalidArgument, c.BaseBet)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds per session %d must be >= 1", ErrInvalidArgument, c.Rounds)
	}
	if c.Sessions < 1 {
		return fmt.Errorf("%w: session count %d must be >= 1", ErrInvalidArgument, c.Sessions)
	}
	if c.Strategy == StrategyMartingale {
		if c.MartingaleFactor <= 1 {
			return fmt.Errorf("%w: martingale factor %f must be > 1", ErrInvalidArgument, c.MartingaleFactor)
		}
		if c.MaxLossStreak < 1 {
			return fmt.Errorf("%w: martingale loss streak cap %d must be >= 1", ErrInvalidArgument, c.MaxLossStreak)
		}
	}
	return nil
}
