package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"adpilot/internal/core/domain"
)

type campaignView struct {
	ID                int64       `json:"id"`
	Platform          string      `json:"platform"`
	ExternalID        string      `json:"external_id"`
	Name              string      `json:"name"`
	Status            string      `json:"status"`
	BudgetMicros      int64       `json:"budget_micros"`
	DailyBudgetMicros int64       `json:"daily_budget_micros"`
	Metrics           metricsView `json:"metrics"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type metricsView struct {
	Impressions           int64    `json:"impressions"`
	Clicks                int64    `json:"clicks"`
	Conversions           int64    `json:"conversions"`
	CostMicros            int64    `json:"cost_micros"`
	ConversionValueMicros int64    `json:"conversion_value_micros"`
	CTR                   float64  `json:"ctr"`
	CPAMicros             *int64   `json:"cpa_micros"`
	ROI                   *float64 `json:"roi"`
	Status                string   `json:"status,omitempty"`
}

type campaignsResponse struct {
	Campaigns       []campaignView `json:"campaigns"`
	Degraded        bool           `json:"degraded"`
	FailedPlatforms []string       `json:"failed_platforms,omitempty"`
}

// handleCampaigns returns the current unified campaign view. Partial
// platform outages yield best-effort data with degraded=true; only a
// total outage is an error (503).
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.UnifiedCampaigns(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrAllPlatformsUnavailable) {
			http.Error(w, "all platforms unavailable", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("unified campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := campaignsResponse{
		Campaigns: make([]campaignView, 0, len(res.Items)),
		Degraded:  res.Degraded,
	}
	for _, p := range res.FailedPlatforms {
		resp.FailedPlatforms = append(resp.FailedPlatforms, string(p))
	}
	for _, item := range res.Items {
		resp.Campaigns = append(resp.Campaigns, toCampaignView(item))
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func toCampaignView(item domain.CampaignMetrics) campaignView {
	d := domain.Derive(item.Metrics)
	m := metricsView{
		Impressions:           item.Metrics.Impressions,
		Clicks:                item.Metrics.Clicks,
		Conversions:           item.Metrics.Conversions,
		CostMicros:            item.Metrics.CostMicros,
		ConversionValueMicros: item.Metrics.ConversionValueMicros,
		CTR:                   d.CTR,
	}
	if d.CPADefined {
		m.CPAMicros = &d.CPAMicros
	}
	if d.ROIDefined {
		m.ROI = &d.ROI
	} else {
		m.Status = "insufficient data"
	}
	return campaignView{
		ID:                item.Campaign.ID,
		Platform:          string(item.Campaign.Platform),
		ExternalID:        item.Campaign.ExternalID,
		Name:              item.Campaign.Name,
		Status:            string(item.Campaign.Status),
		BudgetMicros:      item.Campaign.BudgetMicros,
		DailyBudgetMicros: item.Campaign.DailyBudgetMicros,
		Metrics:           m,
		UpdatedAt:         item.Campaign.UpdatedAt,
	}
}
