package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOCrashLab/models"
)

func testConfig() models.SimulationConfig {
	return models.SimulationConfig{
		Strategy:         models.StrategyFixedCashout,
		HouseEdge:        0.01,
		TargetMultiplier: 2.0,
		InitialBankroll:  1000,
		BaseBet:          10,
		Rounds:           100,
		Sessions:         500,
		Seed:             42,
	}
}

func TestRunSessionsIsReproducible(t *testing.T) {
	cfg := testConfig()
	distribution, _ := NewCrashDistribution(cfg.HouseEdge)
	monteCarloService := NewMonteCarloService(distribution)
	riskAnalysisService := NewRiskAnalysisService(distribution)

	first, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.NoError(t, err)
	second, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.NoError(t, err)

	// Same seed, same configuration: bit-identical results and summary
	assert.Equal(t, first, second)

	firstSummary, err := riskAnalysisService.Summarize(first, cfg)
	assert.NoError(t, err)
	secondSummary, err := riskAnalysisService.Summarize(second, cfg)
	assert.NoError(t, err)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestRunSessionsKeepsSessionInvariants(t *testing.T) {
	cfg := testConfig()
	cfg.InitialBankroll = 35
	cfg.Sessions = 2000
	distribution, _ := NewCrashDistribution(cfg.HouseEdge)
	monteCarloService := NewMonteCarloService(distribution)

	sessions, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.NoError(t, err)
	assert.Len(t, sessions, cfg.Sessions)

	for _, session := range sessions {
		if !session.Ruined {
			assert.Equal(t, cfg.Rounds, session.RoundsPlayed)
		}
		previous := cfg.InitialBankroll
		for _, outcome := range session.Rounds {
			// Bets are always covered, so the bankroll never goes negative
			assert.LessOrEqual(t, outcome.Bet, previous)
			assert.GreaterOrEqual(t, outcome.Bankroll, 0.0)
			assert.GreaterOrEqual(t, outcome.CrashPoint, 1.0)
			assert.Equal(t, outcome.CrashPoint >= outcome.Target, outcome.Won)
			previous = outcome.Bankroll
		}
		assert.Equal(t, previous, session.FinalBankroll)
	}
}

func TestRunSessionsValidatesConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Sessions = 0
	distribution, _ := NewCrashDistribution(0.01)
	monteCarloService := NewMonteCarloService(distribution)

	_, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	cfg = testConfig()
	cfg.Strategy = "oscar grind"
	_, err = monteCarloService.RunSessions(context.Background(), cfg)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestRunSessionsStopsOnCancelledContext(t *testing.T) {
	cfg := testConfig()
	distribution, _ := NewCrashDistribution(cfg.HouseEdge)
	monteCarloService := NewMonteCarloService(distribution)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sessions, err := monteCarloService.RunSessions(ctx, cfg)
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSimulatedProfitConvergesToClosedForm(t *testing.T) {
	// e=0.01, target 2, bet 10: the closed form gives -0.10 per round. A
	// bankroll too large to ruin keeps every session at full length, so the
	// simulated mean must land within a few standard errors.
	cfg := testConfig()
	cfg.InitialBankroll = 1e9
	cfg.Sessions = 2000
	cfg.Rounds = 500
	distribution, _ := NewCrashDistribution(cfg.HouseEdge)
	monteCarloService := NewMonteCarloService(distribution)
	riskAnalysisService := NewRiskAnalysisService(distribution)

	sessions, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.NoError(t, err)
	summary, err := riskAnalysisService.Summarize(sessions, cfg)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, summary.RuinProbability)
	assert.Equal(t, cfg.Sessions*cfg.Rounds, summary.RoundsPlayed)
	assert.InDelta(t, -0.10, summary.ExpectedValuePerRound, 1e-9)
	assert.InDelta(t, summary.ExpectedValuePerRound, summary.MeanProfitPerRound, 0.05)
}

func TestRuinProbabilityGrowsWithRounds(t *testing.T) {
	// With the same seed, a session ruined within M rounds plays the exact
	// same prefix in a longer run, so ruin can only accumulate.
	cfg := testConfig()
	cfg.InitialBankroll = 100
	cfg.Sessions = 1000
	distribution, _ := NewCrashDistribution(cfg.HouseEdge)
	monteCarloService := NewMonteCarloService(distribution)
	riskAnalysisService := NewRiskAnalysisService(distribution)

	previousRuin := 0.0
	for _, rounds := range []int{20, 100, 500} {
		cfg.Rounds = rounds
		sessions, err := monteCarloService.RunSessions(context.Background(), cfg)
		assert.NoError(t, err)
		summary, err := riskAnalysisService.Summarize(sessions, cfg)
		assert.NoError(t, err)

		assert.GreaterOrEqual(t, summary.RuinProbability, previousRuin)
		previousRuin = summary.RuinProbability
	}
}

func TestMartingaleRuinsFasterThanFixed(t *testing.T) {
	cfg := testConfig()
	cfg.InitialBankroll = 320
	cfg.Sessions = 1000
	distribution, _ := NewCrashDistribution(cfg.HouseEdge)
	monteCarloService := NewMonteCarloService(distribution)
	riskAnalysisService := NewRiskAnalysisService(distribution)

	fixedSessions, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.NoError(t, err)
	fixedSummary, err := riskAnalysisService.Summarize(fixedSessions, cfg)
	assert.NoError(t, err)

	cfg.Strategy = models.StrategyMartingale
	cfg.MartingaleFactor = 2.0
	cfg.MaxLossStreak = 10
	martingaleSessions, err := monteCarloService.RunSessions(context.Background(), cfg)
	assert.NoError(t, err)
	martingaleSummary, err := riskAnalysisService.Summarize(martingaleSessions, cfg)
	assert.NoError(t, err)

	assert.Greater(t, martingaleSummary.RuinProbability, fixedSummary.RuinProbability)
}
