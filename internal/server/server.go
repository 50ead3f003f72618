// Package server exposes the refresh cycle over HTTP for a remote chart
// collaborator.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/price-projection/internal/chart"
	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/internal/render"
	"go.uber.org/zap"
)

type handler struct {
	logger       *zap.Logger
	orchestrator *render.Orchestrator
	charts       *chart.Memory
	defaults     projection.Scenario
	version      string
}

// NewHandler constructs the HTTP handler serving the projection API. charts
// must be the renderer orchestrator draws into; defaults is used when a
// request names no scenario.
func NewHandler(logger *zap.Logger, orchestrator *render.Orchestrator, charts *chart.Memory, defaults projection.Scenario, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if defaults.Kind == "" {
		defaults = projection.Preset(projection.Base)
	}

	h := &handler{
		logger:       logger,
		orchestrator: orchestrator,
		charts:       charts,
		defaults:     defaults,
		version:      trimmedVersion,
	}

	mux := http.NewServeMux()

	// Recompute for the requested scenario and replace the displayed chart
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Currently displayed chart
	mux.HandleFunc("/api/chart", h.handleChart)

	// Selector values
	mux.HandleFunc("/api/scenarios", h.handleScenarios)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type projectionResponse struct {
	Scenario        projection.Scenario    `json:"scenario"`
	Rate            float64                `json:"rate"`
	Rows            []projectionRow        `json:"rows"`
	CustomRateInput bool                   `json:"customRateInput"`
	Comparison      *projection.Comparison `json:"comparison,omitempty"`
	Status          render.Status          `json:"status"`
	Quote           quote.Quote            `json:"quote"`
	Chart           chart.Spec             `json:"chart"`
	Generation      uint64                 `json:"generation"`
	Stale           bool                   `json:"stale,omitempty"`
	Warnings        []string               `json:"warnings,omitempty"`
	Duration        string                 `json:"duration"`
}

type projectionRow struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	scenario, err := h.scenarioFromQuery(r)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleProjection")
		return
	}

	result := h.orchestrator.Refresh(r.Context(), render.Input{Scenario: scenario})

	var warnings []string
	if result.Err != nil {
		warnings = append(warnings, result.Err.Error())
	}
	if scenario.Kind == projection.Custom {
		if _, ok := projection.ParseRate(scenario.CustomRate); !ok {
			warnings = append(warnings, "custom growth rate is not a number; projection is flat")
		}
	}

	elapsed := time.Since(start)
	response := projectionResponse{
		Scenario:        scenario,
		Rate:            result.Series.Rate,
		Rows:            buildRows(result.Series),
		CustomRateInput: scenario.Kind == projection.Custom,
		Comparison:      result.Comparison,
		Status:          result.Status,
		Quote:           result.Quote,
		Chart:           result.Chart,
		Generation:      result.Generation,
		Stale:           result.Stale,
		Warnings:        warnings,
		Duration:        elapsed.String(),
	}

	h.logger.Info("projection computed",
		zap.String("op", "server.handleProjection"),
		zap.String("scenario", scenario.String()),
		zap.Int("rows", len(response.Rows)),
		zap.String("status", string(result.Status.State)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) scenarioFromQuery(r *http.Request) (projection.Scenario, error) {
	query := r.URL.Query()

	name := strings.TrimSpace(query.Get("scenario"))
	if name == "" {
		return h.defaults, nil
	}

	kind, err := projection.ParseKind(name)
	if err != nil {
		return projection.Scenario{}, err
	}
	if kind != projection.Custom {
		return projection.Preset(kind), nil
	}

	rate := query.Get("customRate")
	if rate == "" && h.defaults.Kind == projection.Custom {
		rate = h.defaults.CustomRate
	}
	return projection.CustomScenario(rate), nil
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	spec, ok := h.charts.Current()
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, "no chart has been drawn yet", "server.handleChart")
		return
	}
	h.writeJSON(w, http.StatusOK, spec)
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": projection.Kinds,
		"default":   h.defaults,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func buildRows(series projection.Series) []projectionRow {
	prices := series.DisplayPrices()
	rows := make([]projectionRow, 0, len(series.Points))
	for i, p := range series.Points {
		rows = append(rows, projectionRow{Year: p.Year, Price: prices[i]})
	}
	return rows
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("projection request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// Serve runs srv until it stops. A closed server is not an error.
func Serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewHTTPServer binds handler to the configured address and timeouts.
func NewHTTPServer(cfg *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		IdleTimeout:  120 * time.Second,
	}
}
