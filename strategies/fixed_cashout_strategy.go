package strategies

import (
	"gitlab.com/aoterocom/AOCrashLab/models"
)

// FixedCashoutStrategy bets the same amount at the same target every round,
// regardless of history
type FixedCashoutStrategy struct {
	baseBet float64
	target  float64
}

func NewFixedCashoutStrategy(baseBet float64, target float64) FixedCashoutStrategy {
	return FixedCashoutStrategy{baseBet: baseBet, target: target}
}

func (s *FixedCashoutStrategy) Name() string {
	return models.StrategyFixedCashout
}

func (s *FixedCashoutStrategy) Decide(history []models.RoundOutcome, bankroll float64) (float64, float64, error) {
	return s.baseBet, s.target, nil
}
