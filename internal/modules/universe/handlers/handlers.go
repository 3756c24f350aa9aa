// Package handlers provides HTTP handlers for stock universe operations.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/advisor/internal/modules/universe"
)

// Handler handles stock universe HTTP requests
type Handler struct {
	service *universe.Service
	cache   *universe.Cache
	log     zerolog.Logger
}

// NewHandler creates a new universe handler
func NewHandler(service *universe.Service, cache *universe.Cache, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		log:     log.With().Str("handler", "universe").Logger(),
	}
}

// HandleList handles GET /api/stocks
// Returns the full reference stock universe.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.service.All()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load stock universe")
		h.writeError(w, http.StatusInternalServerError, "failed to load stock universe")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"stocks": stocks,
			"count":  len(stocks),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleSearch handles GET /api/stocks/search?q=rel
// Returns up to 10 matches ranked exact, prefix, then substring.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		h.writeError(w, http.StatusBadRequest, "query must be at least 2 characters")
		return
	}

	stocks, err := h.service.Search(query)
	if err != nil {
		h.log.Error().Err(err).Str("query", query).Msg("Stock search failed")
		h.writeError(w, http.StatusInternalServerError, "stock search failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"stocks": stocks,
			"count":  len(stocks),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleRefresh handles POST /api/stocks/refresh
// Forces a reload of the stock universe, bypassing the cache TTL.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Refresh(); err != nil {
		h.log.Error().Err(err).Msg("Universe refresh failed")
		h.writeError(w, http.StatusInternalServerError, "universe refresh failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"refreshed": true,
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
