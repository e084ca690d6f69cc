package strategies

import (
	"fmt"

	"gitlab.com/aoterocom/AOCrashLab/interfaces"
	"gitlab.com/aoterocom/AOCrashLab/models"
)

// StrategyFactory builds a fresh strategy for one session from the run
// configuration. Every session gets its own value, so no state can leak
// between sessions.
func StrategyFactory(cfg *models.SimulationConfig) (interfaces.Strategy, error) {

	switch cfg.Strategy {
	case models.StrategyFixedCashout:
		fixedCashoutStrategy := NewFixedCashoutStrategy(cfg.BaseBet, cfg.TargetMultiplier)
		return interfaces.Strategy(&fixedCashoutStrategy), nil
	case models.StrategyMartingale:
		martingaleStrategy := NewMartingaleStrategy(cfg.BaseBet, cfg.TargetMultiplier, cfg.MartingaleFactor, cfg.MaxLossStreak, cfg.ResetOnCap)
		return interfaces.Strategy(&martingaleStrategy), nil
	case models.StrategyFibonacci:
		fibonacciStrategy := NewFibonacciStrategy(cfg.BaseBet, cfg.TargetMultiplier)
		return interfaces.Strategy(&fibonacciStrategy), nil
	case models.StrategyDAlembert:
		dAlembertStrategy := NewDAlembertStrategy(cfg.BaseBet, cfg.TargetMultiplier)
		return interfaces.Strategy(&dAlembertStrategy), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a known strategy", models.ErrInvalidArgument, cfg.Strategy)
	}

}
