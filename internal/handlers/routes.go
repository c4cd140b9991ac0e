package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/lamassu-studio/website/internal/metrics"
)

// RegisterRoutes registers page, form, and operational routes
func RegisterRoutes(r *chi.Mux, h *Handler, m *metrics.Metrics) {
	r.Get("/", h.LandingPage)
	r.Post("/key/select", h.SelectKey)
	r.Post("/order", h.SubmitOrder)

	r.Get("/api/gate", h.GateState)
	r.Get("/health", Health)
	r.Method("GET", "/metrics", m.Handler())
}
