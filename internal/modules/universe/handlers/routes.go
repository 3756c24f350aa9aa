package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all stock universe routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stocks", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/search", h.HandleSearch)
		r.Post("/refresh", h.HandleRefresh)
	})
}
