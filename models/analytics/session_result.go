package analytics

import (
	"gitlab.com/aoterocom/AOCrashLab/models"
)

// SessionResult is one simulated playthrough: the ordered round record plus
// the figures derived from it. It is immutable once the session finishes.
type SessionResult struct {
	Session       int                   `json:"session"`
	Rounds        []models.RoundOutcome `json:"rounds,omitempty"`
	RoundsPlayed  int                   `json:"roundsPlayed"`
	Wins          int                   `json:"wins"`
	WinRate       float64               `json:"winRate"`
	FinalBankroll float64               `json:"finalBankroll"`
	NetProfit     float64               `json:"netProfit"`
	ROI           float64               `json:"roi"`
	MaxDrawdown   float64               `json:"maxDrawdown"`
	Ruined        bool                  `json:"ruined"`
}

// NewSessionResult derives the summary fields from a finished round sequence
func NewSessionResult(session int, initialBankroll float64, rounds []models.RoundOutcome, ruined bool) SessionResult {
	result := SessionResult{
		Session:       session,
		Rounds:        rounds,
		RoundsPlayed:  len(rounds),
		FinalBankroll: initialBankroll,
		Ruined:        ruined,
	}

	peak := initialBankroll
	for _, outcome := range rounds {
		if outcome.Won {
			result.Wins++
		}
		if outcome.Bankroll > peak {
			peak = outcome.Bankroll
		}
		if drawdown := peak - outcome.Bankroll; drawdown > result.MaxDrawdown {
			result.MaxDrawdown = drawdown
		}
		result.FinalBankroll = outcome.Bankroll
	}

	if result.RoundsPlayed > 0 {
		result.WinRate = float64(result.Wins) / float64(result.RoundsPlayed)
	}
	result.NetProfit = result.FinalBankroll - initialBankroll
	result.ROI = result.NetProfit * 100 / initialBankroll
	return result
}

// Trajectory returns the bankroll after every played round, for charting
func (s *SessionResult) Trajectory() []float64 {
	trajectory := make([]float64, 0, len(s.Rounds))
	for _, outcome := range s.Rounds {
		trajectory = append(trajectory, outcome.Bankroll)
	}
	return trajectory
}
