package interfaces

import (
	"gitlab.com/aoterocom/AOCrashLab/models"
)

type (
	// Strategy decides the next bet size and cash-out target from the round
	// history of the current session and the remaining bankroll. Decide is
	// called once per round, before the crash point is known. A returned bet
	// larger than the bankroll, or a returned error, ends the session as a
	// ruin event. Implementations carry no mutable state: the whole decision
	// is recomputed from the history slice, so sessions can run in parallel
	// with nothing shared.
	Strategy interface {
		Name() string
		Decide(history []models.RoundOutcome, bankroll float64) (bet float64, target float64, err error)
	}
)
