package services

import (
	"fmt"
	"math/rand"

	"gitlab.com/aoterocom/AOCrashLab/interfaces"
	"gitlab.com/aoterocom/AOCrashLab/models"
)

// RoundService resolves single rounds: it asks the strategy for a bet and a
// target, draws a crash point and settles the stake. Pure aside from the
// one random draw.
type RoundService struct {
	distribution interfaces.Distribution
}

func NewRoundService(distribution interfaces.Distribution) RoundService {
	return RoundService{distribution: distribution}
}

// PlayRound resolves the next round of a session. A bet the bankroll cannot
// cover comes back as ErrInsufficientBankroll: the caller reads it as ruin,
// not as a crash.
func (rs *RoundService) PlayRound(strategy interfaces.Strategy, rng *rand.Rand, history []models.RoundOutcome, bankroll float64) (models.RoundOutcome, error) {
	bet, target, err := strategy.Decide(history, bankroll)
	if err != nil {
		return models.RoundOutcome{}, fmt.Errorf("strategy %s gave up: %w", strategy.Name(), err)
	}
	if bet <= 0 {
		return models.RoundOutcome{}, fmt.Errorf("%w: strategy %s returned bet %f", models.ErrInvalidArgument, strategy.Name(), bet)
	}
	if target < 1 {
		return models.RoundOutcome{}, fmt.Errorf("%w: strategy %s returned target %f", models.ErrInvalidArgument, strategy.Name(), target)
	}
	if bet > bankroll {
		return models.RoundOutcome{}, fmt.Errorf("%w: bet %f exceeds bankroll %f", models.ErrInsufficientBankroll, bet, bankroll)
	}

	crashPoint := rs.distribution.SampleCrashPoint(rng)
	won := crashPoint >= target

	profit := -bet
	if won {
		profit = bet * (target - 1)
	}

	return models.RoundOutcome{
		Round:      len(history) + 1,
		Bet:        bet,
		Target:     target,
		CrashPoint: crashPoint,
		Won:        won,
		Profit:     profit,
		Bankroll:   bankroll + profit,
	}, nil
}
