package services

import (
	"fmt"

	"gitlab.com/aoterocom/AOCrashLab/helpers"
	"gitlab.com/aoterocom/AOCrashLab/interfaces"
	"gitlab.com/aoterocom/AOCrashLab/models"
	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
)

// RiskAnalysisService reduces a batch of session results to summary
// statistics, next to the closed-form figures from the distribution so the
// simulated numbers can be sanity-checked against theory.
type RiskAnalysisService struct {
	distribution interfaces.Distribution
}

func NewRiskAnalysisService(distribution interfaces.Distribution) RiskAnalysisService {
	return RiskAnalysisService{distribution: distribution}
}

// Summarize aggregates the sessions of one run
func (ras *RiskAnalysisService) Summarize(sessions []analytics.SessionResult, cfg models.SimulationConfig) (analytics.SummaryStatistics, error) {
	if len(sessions) == 0 {
		return analytics.SummaryStatistics{}, fmt.Errorf("%w: no sessions to summarize", models.ErrInvalidArgument)
	}

	summary := analytics.SummaryStatistics{Sessions: len(sessions)}

	finals := make([]float64, 0, len(sessions))
	drawdowns := make([]float64, 0, len(sessions))
	rois := make([]float64, 0, len(sessions))
	totalProfit := 0.0
	totalWins := 0
	ruinCount := 0

	for _, session := range sessions {
		finals = append(finals, session.FinalBankroll)
		drawdowns = append(drawdowns, session.MaxDrawdown)
		rois = append(rois, session.ROI)
		totalProfit += session.NetProfit
		totalWins += session.Wins
		summary.RoundsPlayed += session.RoundsPlayed
		if session.Ruined {
			ruinCount++
		}
	}

	summary.RuinProbability = float64(ruinCount) / float64(len(sessions))
	summary.MeanFinalBankroll = helpers.Mean(finals)
	summary.MedianFinalBankroll = helpers.Median(finals)
	summary.BankrollVariance = helpers.Variance(finals, summary.MeanFinalBankroll)
	summary.BankrollStdDev = helpers.StdDev(finals, summary.MeanFinalBankroll)
	summary.MeanROI = helpers.Mean(rois)
	summary.MeanMaxDrawdown = helpers.Mean(drawdowns)
	if summary.RoundsPlayed > 0 {
		summary.WinRate = float64(totalWins) / float64(summary.RoundsPlayed)
		summary.MeanProfitPerRound = totalProfit / float64(summary.RoundsPlayed)
	}

	// Closed-form cross-checks for the configured fixed target
	p, err := ras.distribution.ProbabilityOfSuccess(cfg.TargetMultiplier)
	if err != nil {
		return analytics.SummaryStatistics{}, err
	}
	expectedValue, err := ras.distribution.ExpectedValue(cfg.TargetMultiplier, cfg.BaseBet)
	if err != nil {
		return analytics.SummaryStatistics{}, err
	}
	summary.ProbabilityOfSuccess = p
	summary.ExpectedValuePerRound = expectedValue
	summary.KellyFraction = KellyFraction(p, cfg.TargetMultiplier)

	return summary, nil
}

// KellyFraction is the bankroll fraction maximizing long-run log growth for
// win probability p at payout multiplier m: f* = (p*(m-1) - (1-p)) / (m-1).
// A negative edge reports 0, meaning "do not bet". Clamped to [0, 1].
func KellyFraction(p float64, multiplier float64) float64 {
	b := multiplier - 1
	if b <= 0 || p <= 0 {
		return 0
	}
	return helpers.Clamp((p*b-(1-p))/b, 0, 1)
}
