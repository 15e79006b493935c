package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"adpilot/internal/core/domain"
)

// GoogleAdapter implements port.PlatformAdapter over the gateway's Google
// Ads endpoints. Google payloads carry monetary values as micros and
// paginate with an opaque nextPageToken.
type GoogleAdapter struct {
	t        *transport
	updateMu sync.Mutex
}

// NewGoogleAdapter builds the Google adapter from gateway settings.
func NewGoogleAdapter(cfg Config, logger *slog.Logger) *GoogleAdapter {
	return &GoogleAdapter{t: newTransport(domain.PlatformGoogle, cfg, logger)}
}

func (a *GoogleAdapter) Platform() domain.Platform { return domain.PlatformGoogle }

type googleCampaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Budget struct {
		AmountMicros      int64 `json:"amountMicros"`
		DailyAmountMicros int64 `json:"dailyAmountMicros"`
	} `json:"campaignBudget"`
	Metrics struct {
		Impressions            int64 `json:"impressions"`
		Clicks                 int64 `json:"clicks"`
		Conversions            int64 `json:"conversions"`
		CostMicros             int64 `json:"costMicros"`
		ConversionsValueMicros int64 `json:"conversionsValueMicros"`
	} `json:"metrics"`
}

type googlePage struct {
	Campaigns     []googleCampaign `json:"campaigns"`
	NextPageToken string           `json:"nextPageToken"`
}

// FetchCampaigns walks all pages and returns the complete campaign set.
// Retries restart pagination from the first page so a partially assembled
// set is never returned.
func (a *GoogleAdapter) FetchCampaigns(ctx context.Context, window domain.Window) ([]domain.CampaignMetrics, error) {
	var items []domain.CampaignMetrics
	err := a.t.withRetry(ctx, "fetch campaigns", func(ctx context.Context) error {
		items = items[:0]
		seen := make(map[string]bool)
		pageToken := ""
		for {
			q := url.Values{}
			q.Set("from", window.From.Format(time.RFC3339))
			q.Set("to", window.To.Format(time.RFC3339))
			if pageToken != "" {
				q.Set("pageToken", pageToken)
			}
			var page googlePage
			if err := a.t.do(ctx, http.MethodGet, "/v1/google/campaigns", q, nil, &page); err != nil {
				return err
			}
			for _, gc := range page.Campaigns {
				if seen[gc.ID] {
					return domain.NewAdapterError(domain.PlatformGoogle, domain.AdapterRejected,
						fmt.Errorf("%w: %s", domain.ErrDuplicateCampaign, gc.ID))
				}
				seen[gc.ID] = true
				items = append(items, normalizeGoogle(gc))
			}
			if page.NextPageToken == "" {
				return nil
			}
			pageToken = page.NextPageToken
		}
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateBudget patches the campaign's daily budget. Calls are serialized
// through updateMu so concurrent executor work never bursts past Google's
// rate limits.
func (a *GoogleAdapter) UpdateBudget(ctx context.Context, externalID string, newBudgetMicros int64) error {
	a.updateMu.Lock()
	defer a.updateMu.Unlock()
	body := map[string]int64{"daily_budget_micros": newBudgetMicros}
	path := fmt.Sprintf("/v1/google/campaigns/%s/budget", url.PathEscape(externalID))
	return a.t.withRetry(ctx, "update budget", func(ctx context.Context) error {
		return a.t.do(ctx, http.MethodPatch, path, nil, body, nil)
	})
}

func normalizeGoogle(gc googleCampaign) domain.CampaignMetrics {
	return domain.CampaignMetrics{
		Campaign: domain.Campaign{
			Platform:          domain.PlatformGoogle,
			ExternalID:        gc.ID,
			Name:              gc.Name,
			Status:            domain.CampaignStatus(gc.Status),
			BudgetMicros:      gc.Budget.AmountMicros,
			DailyBudgetMicros: gc.Budget.DailyAmountMicros,
			UpdatedAt:         time.Now().UTC(),
		},
		Metrics: domain.MetricsSnapshot{
			Impressions:           gc.Metrics.Impressions,
			Clicks:                gc.Metrics.Clicks,
			Conversions:           gc.Metrics.Conversions,
			CostMicros:            gc.Metrics.CostMicros,
			ConversionValueMicros: gc.Metrics.ConversionsValueMicros,
		},
	}
}
