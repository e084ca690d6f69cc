package strategies

import (
	"gitlab.com/aoterocom/AOCrashLab/models"
)

// FibonacciStrategy walks the Fibonacci sequence: one step forward after a
// loss, two steps back after a win, never below index 0. The bet is the base
// bet times the Fibonacci number at the current index.
type FibonacciStrategy struct {
	baseBet float64
	target  float64
}

func NewFibonacciStrategy(baseBet float64, target float64) FibonacciStrategy {
	return FibonacciStrategy{baseBet: baseBet, target: target}
}

func (s *FibonacciStrategy) Name() string {
	return models.StrategyFibonacci
}

func (s *FibonacciStrategy) Decide(history []models.RoundOutcome, bankroll float64) (float64, float64, error) {
	index := 0
	for _, outcome := range history {
		if outcome.Won {
			index -= 2
			if index < 0 {
				index = 0
			}
		} else {
			index++
		}
	}
	return s.baseBet * float64(fibonacci(index)), s.target, nil
}

// fibonacci returns the sequence 1, 1, 2, 3, 5, 8... for n = 0, 1, 2...
// The walk saturates just below the int64 ceiling; a bet that size already
// exceeds any coverable bankroll, so the round still resolves as ruin
// instead of overflowing into a negative bet.
func fibonacci(n int) int64 {
	if n > 91 {
		n = 91
	}
	previous, current := int64(1), int64(1)
	for i := 0; i < n-1; i++ {
		previous, current = current, previous+current
	}
	return current
}
