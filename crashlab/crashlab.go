package crashlab

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"gitlab.com/aoterocom/AOCrashLab/api"
	"gitlab.com/aoterocom/AOCrashLab/helpers"
	"gitlab.com/aoterocom/AOCrashLab/models"
	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
	"gitlab.com/aoterocom/AOCrashLab/services"
	"gitlab.com/aoterocom/AOCrashLab/ui"
)

// CrashLab wires the engine to the command line. Parameters come from
// conf.env and can be overridden per run with flags.
type CrashLab struct {
}

// ConfigFromContext builds the run configuration from the environment with
// flag overrides
func (cl *CrashLab) ConfigFromContext(c *cli.Context) models.SimulationConfig {
	cfg := models.SimulationConfig{
		Strategy:         envString("strategy", models.StrategyFixedCashout),
		HouseEdge:        envFloat("houseEdge", 0.01),
		TargetMultiplier: envFloat("targetMultiplier", 2.0),
		InitialBankroll:  envFloat("initialBankroll", 1000),
		BaseBet:          envFloat("baseBet", 10),
		Rounds:           envInt("rounds", 100),
		Sessions:         envInt("sessions", 10000),
		MartingaleFactor: envFloat("martingaleFactor", 2.0),
		MaxLossStreak:    envInt("maxLossStreak", 10),
		ResetOnCap:       envBool("resetOnCap"),
		Seed:             int64(envInt("seed", 0)),
		Workers:          envInt("workers", 0),
	}

	if c.IsSet("strategy") {
		cfg.Strategy = c.String("strategy")
	}
	if c.IsSet("houseEdge") {
		cfg.HouseEdge = c.Float64("houseEdge")
	}
	if c.IsSet("target") {
		cfg.TargetMultiplier = c.Float64("target")
	}
	if c.IsSet("bankroll") {
		cfg.InitialBankroll = c.Float64("bankroll")
	}
	if c.IsSet("baseBet") {
		cfg.BaseBet = c.Float64("baseBet")
	}
	if c.IsSet("rounds") {
		cfg.Rounds = c.Int("rounds")
	}
	if c.IsSet("sessions") {
		cfg.Sessions = c.Int("sessions")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	return cfg
}

// Simulate runs one Monte Carlo batch and logs the probability table, the
// summary and the closed-form cross-check
func (cl *CrashLab) Simulate(c *cli.Context) error {
	cfg := cl.ConfigFromContext(c)
	summary, _, err := cl.run(c, cfg)
	if err != nil {
		return err
	}
	logSummary(cfg, summary)
	return nil
}

// UI runs one batch and renders it as a termui dashboard
func (cl *CrashLab) UI(c *cli.Context) error {
	cfg := cl.ConfigFromContext(c)
	summary, sessions, err := cl.run(c, cfg)
	if err != nil {
		return err
	}
	userInterface := ui.NewUserInterface(cfg, summary, sessions)
	return userInterface.Run()
}

// Compare runs every scenario of a YAML file and flags the best performer
func (cl *CrashLab) Compare(c *cli.Context) error {
	scenarios, err := loadScenarios(c.String("scenarios"))
	if err != nil {
		return err
	}

	bestScenario := ""
	bestMean := 0.0
	for _, cfg := range scenarios {
		summary, _, err := cl.run(c, cfg)
		if err != nil {
			return err
		}
		name := cfg.Name
		if name == "" {
			name = cfg.Strategy
		}
		helpers.Logger.Infoln(fmt.Sprintf("%s: mean final %.2f | median %.2f | ruin %.2f%% | EV/round %.4f vs simulated %.4f",
			name, summary.MeanFinalBankroll, summary.MedianFinalBankroll, summary.RuinProbability*100,
			summary.ExpectedValuePerRound, summary.MeanProfitPerRound))
		if bestScenario == "" || summary.MeanFinalBankroll > bestMean {
			bestScenario = name
			bestMean = summary.MeanFinalBankroll
		}
	}

	helpers.Logger.Infoln(fmt.Sprintf("Best mean final bankroll: %s (%.2f). The house edge still wins in expectation.", bestScenario, bestMean))
	return nil
}

// loadScenarios reads a YAML list of run configurations
func loadScenarios(path string) ([]models.SimulationConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read scenarios file: %w", err)
	}

	var scenarios []models.SimulationConfig
	if err := yaml.Unmarshal(content, &scenarios); err != nil {
		return nil, fmt.Errorf("couldn't parse scenarios file: %w", err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: scenarios file %s holds no scenarios", models.ErrInvalidArgument, path)
	}
	return scenarios, nil
}

// Serve exposes the engine as a JSON API for an external frontend
func (cl *CrashLab) Serve(c *cli.Context) error {
	addr := c.String("addr")
	handler := api.NewHandler()
	helpers.Logger.Infoln("🎰 CrashLab API listening on " + addr)
	return http.ListenAndServe(addr, handler.Routes())
}

// run executes one configured batch, cancellable with Ctrl-C between
// sessions
func (cl *CrashLab) run(c *cli.Context, cfg models.SimulationConfig) (analytics.SummaryStatistics, []analytics.SessionResult, error) {
	if err := cfg.Validate(); err != nil {
		return analytics.SummaryStatistics{}, nil, err
	}

	distribution, err := services.NewCrashDistribution(cfg.HouseEdge)
	if err != nil {
		return analytics.SummaryStatistics{}, nil, err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	monteCarloService := services.NewMonteCarloService(distribution)
	sessions, err := monteCarloService.RunSessions(ctx, cfg)
	if err != nil {
		return analytics.SummaryStatistics{}, nil, err
	}
	if len(sessions) == 0 && ctx.Err() != nil {
		return analytics.SummaryStatistics{}, nil, fmt.Errorf("run stopped before any session completed: %w", ctx.Err())
	}

	riskAnalysisService := services.NewRiskAnalysisService(distribution)
	summary, err := riskAnalysisService.Summarize(sessions, cfg)
	if err != nil {
		return analytics.SummaryStatistics{}, nil, err
	}
	return summary, sessions, nil
}

func logSummary(cfg models.SimulationConfig, summary analytics.SummaryStatistics) {
	helpers.Logger.Infoln(fmt.Sprintf("Strategy %s, %d sessions of up to %d rounds", cfg.Strategy, summary.Sessions, cfg.Rounds))
	helpers.Logger.Infoln(fmt.Sprintf("P(success at x%.2f): %.4f | Kelly fraction: %.4f", cfg.TargetMultiplier, summary.ProbabilityOfSuccess, summary.KellyFraction))
	helpers.Logger.Infoln(fmt.Sprintf("Ruin probability: %.2f%%", summary.RuinProbability*100))
	helpers.Logger.Infoln(fmt.Sprintf("Final bankroll: mean %.2f | median %.2f | stddev %.2f", summary.MeanFinalBankroll, summary.MedianFinalBankroll, summary.BankrollStdDev))
	helpers.Logger.Infoln(fmt.Sprintf("Profit per round: simulated %.4f | closed form %.4f", summary.MeanProfitPerRound, summary.ExpectedValuePerRound))
	helpers.Logger.Infoln(fmt.Sprintf("Win rate: %.2f%% | mean ROI: %.2f%% | mean max drawdown: %.2f", summary.WinRate*100, summary.MeanROI, summary.MeanMaxDrawdown))
}

func envString(name string, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envFloat(name string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(name), 64)
	if err != nil {
		return fallback
	}
	return value
}

func envInt(name string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return value
}

func envBool(name string) bool {
	value, _ := strconv.ParseBool(os.Getenv(name))
	return value
}
