package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gitlab.com/aoterocom/AOCrashLab/helpers"
	"gitlab.com/aoterocom/AOCrashLab/models"
	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
	"gitlab.com/aoterocom/AOCrashLab/services"
)

// Handler is the JSON boundary for an external chart frontend. It only
// translates requests into engine calls; all the math stays in services.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/probabilities", h.Probabilities)
	r.Post("/simulate", h.Simulate)
	return r
}

// SimulateResponse carries one finished run. Sessions are only populated
// when the caller asks for them with ?includeSessions=true.
type SimulateResponse struct {
	RunID    string                      `json:"runId"`
	Config   models.SimulationConfig     `json:"config"`
	Summary  analytics.SummaryStatistics `json:"summary"`
	Sessions []analytics.SessionResult   `json:"sessions,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var cfg models.SimulationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	distribution, err := services.NewCrashDistribution(cfg.HouseEdge)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	monteCarloService := services.NewMonteCarloService(distribution)
	sessions, err := monteCarloService.RunSessions(r.Context(), cfg)
	if err != nil {
		writeError(w, err)
		return
	}

	riskAnalysisService := services.NewRiskAnalysisService(distribution)
	summary, err := riskAnalysisService.Summarize(sessions, cfg)
	if err != nil {
		writeError(w, err)
		return
	}

	response := SimulateResponse{
		RunID:   uuid.New().String(),
		Config:  cfg,
		Summary: summary,
	}
	if includeSessions, _ := strconv.ParseBool(r.URL.Query().Get("includeSessions")); includeSessions {
		if includeRounds, _ := strconv.ParseBool(r.URL.Query().Get("includeRounds")); !includeRounds {
			for i := range sessions {
				sessions[i].Rounds = nil
			}
		}
		response.Sessions = sessions
	}

	helpers.Logger.Infoln(fmt.Sprintf("Run %s: %s, %d sessions, ruin probability %.4f",
		response.RunID, cfg.Strategy, summary.Sessions, summary.RuinProbability))
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Probabilities(w http.ResponseWriter, r *http.Request) {
	houseEdge, err := strconv.ParseFloat(r.URL.Query().Get("houseEdge"), 64)
	if err != nil {
		http.Error(w, "houseEdge query parameter required", http.StatusBadRequest)
		return
	}

	multipliers := []float64{1.1, 1.5, 2, 3, 5, 10, 20, 50, 100}
	if raw := r.URL.Query().Get("multipliers"); raw != "" {
		multipliers = multipliers[:0]
		for _, field := range strings.Split(raw, ",") {
			multiplier, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				http.Error(w, fmt.Sprintf("bad multiplier %q", field), http.StatusBadRequest)
				return
			}
			multipliers = append(multipliers, multiplier)
		}
	}

	distribution, err := services.NewCrashDistribution(houseEdge)
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := distribution.ProbabilityTable(multipliers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, models.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		helpers.Logger.Errorln(err)
	}
}
