package strategies

import (
	"gitlab.com/aoterocom/AOCrashLab/models"
)

// DAlembertStrategy raises the bet by one base-bet unit after a loss and
// lowers it by one unit after a win, never below the base bet
type DAlembertStrategy struct {
	baseBet float64
	target  float64
}

func NewDAlembertStrategy(baseBet float64, target float64) DAlembertStrategy {
	return DAlembertStrategy{baseBet: baseBet, target: target}
}

func (s *DAlembertStrategy) Name() string {
	return models.StrategyDAlembert
}

func (s *DAlembertStrategy) Decide(history []models.RoundOutcome, bankroll float64) (float64, float64, error) {
	level := 0
	for _, outcome := range history {
		if outcome.Won {
			if level > 0 {
				level--
			}
		} else {
			level++
		}
	}
	return s.baseBet * float64(1+level), s.target, nil
}
