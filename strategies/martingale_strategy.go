package strategies

import (
	"fmt"
	"math"

	"gitlab.com/aoterocom/AOCrashLab/models"
)

// MartingaleStrategy multiplies the bet by a configured factor after every
// loss and resets to the base bet after a win. The loss streak is capped:
// once reached, the strategy either starts the progression over or gives up
// the session, depending on resetOnCap.
type MartingaleStrategy struct {
	baseBet       float64
	target        float64
	factor        float64
	maxLossStreak int
	resetOnCap    bool
}

func NewMartingaleStrategy(baseBet float64, target float64, factor float64, maxLossStreak int, resetOnCap bool) MartingaleStrategy {
	return MartingaleStrategy{
		baseBet:       baseBet,
		target:        target,
		factor:        factor,
		maxLossStreak: maxLossStreak,
		resetOnCap:    resetOnCap,
	}
}

func (s *MartingaleStrategy) Name() string {
	return models.StrategyMartingale
}

func (s *MartingaleStrategy) Decide(history []models.RoundOutcome, bankroll float64) (float64, float64, error) {
	streak := trailingLossStreak(history)
	if streak >= s.maxLossStreak {
		if !s.resetOnCap {
			return 0, 0, fmt.Errorf("martingale loss streak cap of %d reached: %w", s.maxLossStreak, models.ErrInsufficientBankroll)
		}
		// Start the progression over, as if the capped streak never happened
		streak = streak % s.maxLossStreak
	}
	bet := s.baseBet * math.Pow(s.factor, float64(streak))
	return bet, s.target, nil
}

// trailingLossStreak counts the consecutive losses at the end of the history
func trailingLossStreak(history []models.RoundOutcome) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Won {
			break
		}
		streak++
	}
	return streak
}
