package services

import (
	"fmt"
	"math/rand"

	"gitlab.com/aoterocom/AOCrashLab/helpers"
	"gitlab.com/aoterocom/AOCrashLab/models"
	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
)

// CrashDistribution is the crash-point law implied by a fixed house edge e:
// P(crash >= m) = (1-e)/m for m >= 1, with no mass below 1.0. The same
// formula backs every probability in the system, so Monte Carlo results
// converge to the closed-form expectation as the run grows.
type CrashDistribution struct {
	houseEdge float64
}

func NewCrashDistribution(houseEdge float64) (*CrashDistribution, error) {
	if houseEdge <= 0 || houseEdge >= 1 {
		return nil, fmt.Errorf("%w: house edge %f must be inside (0, 1)", models.ErrInvalidArgument, houseEdge)
	}
	return &CrashDistribution{houseEdge: houseEdge}, nil
}

func (d *CrashDistribution) HouseEdge() float64 {
	return d.houseEdge
}

// ProbabilityOfSuccess returns P(crash >= multiplier) = (1-e)/m,
// clamped to [0, 1]
func (d *CrashDistribution) ProbabilityOfSuccess(multiplier float64) (float64, error) {
	if multiplier < 1 {
		return 0, fmt.Errorf("%w: target multiplier %f must be >= 1", models.ErrInvalidArgument, multiplier)
	}
	return helpers.Clamp((1-d.houseEdge)/multiplier, 0, 1), nil
}

// ExpectedValue is the closed-form expectation of one bet cashing out at the
// given multiplier. With this distribution it always works out to -e * bet.
func (d *CrashDistribution) ExpectedValue(multiplier float64, bet float64) (float64, error) {
	p, err := d.ProbabilityOfSuccess(multiplier)
	if err != nil {
		return 0, err
	}
	return p*bet*(multiplier-1) - (1-p)*bet, nil
}

// SampleCrashPoint draws one crash point from the law: with u uniform on
// (0,1), m = (1-e)/u satisfies P(m >= x) = (1-e)/x. Draws below 1.0 are
// floored to 1.0 and represent an instant crash. This is the only
// nondeterministic call in the simulator; the generator handle is explicit
// so every run is reproducible from its seed.
func (d *CrashDistribution) SampleCrashPoint(rng *rand.Rand) float64 {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}
	crashPoint := (1 - d.houseEdge) / u
	if crashPoint < 1 {
		return 1
	}
	return crashPoint
}

// ProbabilityTable computes the closed-form table for a multiplier sweep
func (d *CrashDistribution) ProbabilityTable(multipliers []float64) ([]analytics.ProbabilityRow, error) {
	rows := make([]analytics.ProbabilityRow, 0, len(multipliers))
	for _, multiplier := range multipliers {
		p, err := d.ProbabilityOfSuccess(multiplier)
		if err != nil {
			return nil, err
		}
		row := analytics.ProbabilityRow{
			Multiplier:         multiplier,
			SuccessProbability: p,
			CrashProbability:   1 - p,
		}
		if p > 0 {
			row.DecimalOdds = 1 / p
		}
		rows = append(rows, row)
	}
	return rows, nil
}
