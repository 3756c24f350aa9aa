// Package server provides the HTTP server and routing for the advisor.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbStatus := "healthy"
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.QuickCheck(ctx); err != nil {
			s.log.Warn().Err(err).Msg("Database health check failed")
			dbStatus = "unhealthy"
		}
	}

	response := map[string]interface{}{
		"status":   "healthy",
		"version":  "1.0.0",
		"service":  "advisor",
		"database": dbStatus,
	}

	s.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
