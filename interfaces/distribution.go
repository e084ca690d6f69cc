package interfaces

import (
	"math/rand"

	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
)

type (
	// Distribution models the crash-point law of the game. SampleCrashPoint
	// is the single stochastic primitive of the whole system; everything
	// else is deterministic given its outputs, which keeps the simulator
	// reproducible from an explicit generator handle.
	Distribution interface {
		HouseEdge() float64
		ProbabilityOfSuccess(multiplier float64) (float64, error)
		ExpectedValue(multiplier float64, bet float64) (float64, error)
		SampleCrashPoint(rng *rand.Rand) float64
		ProbabilityTable(multipliers []float64) ([]analytics.ProbabilityRow, error)
	}
)
