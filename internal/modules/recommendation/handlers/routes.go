package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all recommendation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/analysis/{ticker}", func(w http.ResponseWriter, r *http.Request) {
		ticker := chi.URLParam(r, "ticker")
		h.HandleAnalyze(w, r, ticker)
	})

	r.Route("/recommendations", func(r chi.Router) {
		r.Post("/", h.HandleAnalyzePortfolio)
		r.Get("/recent", h.HandleRecent)
	})
}
