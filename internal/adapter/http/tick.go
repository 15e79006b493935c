package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adpilot/internal/core/domain"
)

// handleTick triggers one optimization tick on operator demand. A tick
// already in progress yields HTTP 409; the trigger never queues.
func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.RunTick(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTickInProgress):
			http.Error(w, "tick already in progress", http.StatusConflict)
		case errors.Is(err, domain.ErrAllPlatformsUnavailable):
			http.Error(w, "all platforms unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Error("tick error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
