package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"gitlab.com/aoterocom/AOCrashLab/helpers"
	"gitlab.com/aoterocom/AOCrashLab/interfaces"
	"gitlab.com/aoterocom/AOCrashLab/models"
	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
	"gitlab.com/aoterocom/AOCrashLab/strategies"
)

// seedIncrement spaces the per-session generator seeds apart so every
// session draws from its own deterministic stream. It is the golden ratio
// in 64 bits, reinterpreted as a signed value.
const seedIncrement = int64(-7046029254386353131)

// MonteCarloService runs N independent sessions of up to M rounds each.
// Sessions share nothing, so they are spread over a worker pool; within a
// session rounds stay strictly sequential because every decision depends on
// the rounds before it.
type MonteCarloService struct {
	round RoundService
}

func NewMonteCarloService(distribution interfaces.Distribution) MonteCarloService {
	return MonteCarloService{round: NewRoundService(distribution)}
}

// RunSessions simulates cfg.Sessions playthroughs and returns their results
// in session order. Cancelling the context stops the run between sessions;
// sessions not yet finished are discarded, never half-reported. A zero seed
// is resolved from the clock once, so one run is always self-consistent.
func (mcs *MonteCarloService) RunSessions(ctx context.Context, cfg models.SimulationConfig) ([]analytics.SessionResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Fail on an unknown strategy name before any worker starts
	if _, err := strategies.StrategyFactory(&cfg); err != nil {
		return nil, err
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Sessions {
		workers = cfg.Sessions
	}

	jobs := make(chan int, cfg.Sessions)
	for session := 0; session < cfg.Sessions; session++ {
		jobs <- session
	}
	close(jobs)

	sessionResults := make([]*analytics.SessionResult, cfg.Sessions)
	sessionErrors := make([]error, cfg.Sessions)

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for session := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				result, err := mcs.runSession(session, baseSeed, cfg)
				if err != nil {
					sessionErrors[session] = err
					return
				}
				sessionResults[session] = &result
			}
		}()
	}
	wg.Wait()

	for _, err := range sessionErrors {
		if err != nil {
			return nil, err
		}
	}

	completed := make([]analytics.SessionResult, 0, cfg.Sessions)
	for _, result := range sessionResults {
		if result != nil {
			completed = append(completed, *result)
		}
	}

	if len(completed) < cfg.Sessions {
		helpers.Logger.Warnln(fmt.Sprintf("Run cancelled: %d of %d sessions completed", len(completed), cfg.Sessions))
	}
	return completed, nil
}

// runSession plays one session with a fresh strategy and its own generator
func (mcs *MonteCarloService) runSession(session int, baseSeed int64, cfg models.SimulationConfig) (analytics.SessionResult, error) {
	strategy, err := strategies.StrategyFactory(&cfg)
	if err != nil {
		return analytics.SessionResult{}, err
	}

	rng := rand.New(rand.NewSource(baseSeed + int64(session+1)*seedIncrement))
	bankroll := cfg.InitialBankroll
	history := make([]models.RoundOutcome, 0, cfg.Rounds)
	ruined := false

	for round := 0; round < cfg.Rounds; round++ {
		outcome, err := mcs.round.PlayRound(strategy, rng, history, bankroll)
		if err != nil {
			if errors.Is(err, models.ErrInsufficientBankroll) {
				ruined = true
				break
			}
			return analytics.SessionResult{}, err
		}
		history = append(history, outcome)
		bankroll = outcome.Bankroll
		if bankroll <= 0 {
			ruined = true
			break
		}
	}

	return analytics.NewSessionResult(session+1, cfg.InitialBankroll, history, ruined), nil
}
