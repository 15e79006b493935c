package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"adpilot/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the unified campaign
// view, the manual tick trigger and the audit trail on a chi.Router.
type Handler struct {
	svc    port.Optimizer
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.Optimizer, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleCampaigns)
		r.Post("/optimize/tick", h.handleTick)
		r.Get("/runs", h.handleRuns)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
