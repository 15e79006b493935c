package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adpilot/internal/core/domain"
)

type runView struct {
	ID              string    `json:"id"`
	CampaignID      int64     `json:"campaign_id"`
	OldBudgetMicros int64     `json:"old_budget_micros"`
	NewBudgetMicros int64     `json:"new_budget_micros"`
	Reason          string    `json:"reason"`
	Outcome         string    `json:"outcome"`
	CreatedAt       time.Time `json:"created_at"`
}

// handleRuns returns the optimization audit trail, newest first. It
// accepts optional `campaign_id` and `limit` query parameters. Invalid
// parameters result in HTTP 400.
func (h *Handler) handleRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var campaignID *int64
	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		campaignID = &id
	}

	limit := 100
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := h.svc.ListRuns(r.Context(), campaignID, limit)
	if err != nil {
		h.logger.Error("list runs error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	views := make([]runView, 0, len(runs))
	for _, run := range runs {
		views = append(views, toRunView(run))
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(views); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func toRunView(run domain.OptimizationRun) runView {
	return runView{
		ID:              run.ID,
		CampaignID:      run.CampaignID,
		OldBudgetMicros: run.OldBudgetMicros,
		NewBudgetMicros: run.NewBudgetMicros,
		Reason:          run.Reason,
		Outcome:         string(run.Outcome),
		CreatedAt:       run.CreatedAt,
	}
}
