// Package handlers provides HTTP handlers for recommendation operations.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/recommendation"
)

// Handler handles recommendation HTTP requests
type Handler struct {
	service *recommendation.Service
	repo    *recommendation.Repository
	log     zerolog.Logger
}

// NewHandler creates a new recommendation handler
func NewHandler(
	service *recommendation.Service,
	repo *recommendation.Repository,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		log:     log.With().Str("handler", "recommendation").Logger(),
	}
}

// HandleAnalyze handles GET /api/analysis/{ticker}?horizon=medium_term
// Runs the full analysis pipeline for a single ticker.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request, ticker string) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		h.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	horizon := domain.HorizonMediumTerm
	if raw := r.URL.Query().Get("horizon"); raw != "" {
		horizon = domain.Horizon(raw)
		if !horizon.Valid() {
			h.writeError(w, http.StatusBadRequest, "invalid horizon: "+raw)
			return
		}
	}

	rec, err := h.service.Analyze(r.Context(), ticker, horizon)
	if err != nil {
		if r.Context().Err() != nil {
			return // client went away
		}
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Analysis failed")
		h.writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rec,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// portfolioRequest is the body of POST /api/recommendations
type portfolioRequest struct {
	Holdings []domain.Holding `json:"holdings"`
	Horizon  domain.Horizon   `json:"horizon"`
}

// HandleAnalyzePortfolio handles POST /api/recommendations
// Analyzes a batch of holdings and returns recommendations sorted by
// combined score, best first.
func (h *Handler) HandleAnalyzePortfolio(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Holdings) == 0 {
		h.writeError(w, http.StatusBadRequest, "holdings are required")
		return
	}
	if req.Horizon == "" {
		req.Horizon = domain.HorizonMediumTerm
	}
	if !req.Horizon.Valid() {
		h.writeError(w, http.StatusBadRequest, "invalid horizon: "+string(req.Horizon))
		return
	}

	recs, err := h.service.AnalyzePortfolio(r.Context(), req.Holdings, req.Horizon)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.log.Error().Err(err).Int("holdings", len(req.Holdings)).Msg("Portfolio analysis failed")
		h.writeError(w, http.StatusInternalServerError, "portfolio analysis failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"recommendations": recs,
			"count":           len(recs),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleRecent handles GET /api/recommendations/recent?limit=50
// Returns recently stored recommendations, newest first.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, "invalid limit: "+raw)
			return
		}
		limit = parsed
	}

	stored, err := h.repo.ListRecent(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list recent recommendations")
		h.writeError(w, http.StatusInternalServerError, "failed to list recommendations")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"recommendations": stored,
			"count":           len(stored),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{
		"error": message,
	})
}
