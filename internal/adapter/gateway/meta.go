package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"adpilot/internal/core/domain"
)

// MetaAdapter implements port.PlatformAdapter over the gateway's Meta Ads
// endpoints. Meta payloads carry money as decimal strings, counters as
// strings and paginate with cursors; everything is normalized to the
// unified model here and nowhere above.
type MetaAdapter struct {
	t        *transport
	updateMu sync.Mutex
}

// NewMetaAdapter builds the Meta adapter from gateway settings.
func NewMetaAdapter(cfg Config, logger *slog.Logger) *MetaAdapter {
	return &MetaAdapter{t: newTransport(domain.PlatformMeta, cfg, logger)}
}

func (a *MetaAdapter) Platform() domain.Platform { return domain.PlatformMeta }

type metaCampaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
	Insights       struct {
		Impressions     string `json:"impressions"`
		Clicks          string `json:"clicks"`
		Conversions     string `json:"conversions"`
		Spend           string `json:"spend"`
		ConversionValue string `json:"conversion_value"`
	} `json:"insights"`
}

type metaPage struct {
	Data   []metaCampaign `json:"data"`
	Paging struct {
		Cursors struct {
			After string `json:"after"`
		} `json:"cursors"`
		Next string `json:"next"`
	} `json:"paging"`
}

// FetchCampaigns walks all cursor pages and returns the complete set, or
// fails entirely. Malformed numeric fields are a contract violation, not a
// transient error.
func (a *MetaAdapter) FetchCampaigns(ctx context.Context, window domain.Window) ([]domain.CampaignMetrics, error) {
	var items []domain.CampaignMetrics
	err := a.t.withRetry(ctx, "fetch campaigns", func(ctx context.Context) error {
		items = items[:0]
		seen := make(map[string]bool)
		after := ""
		for {
			q := url.Values{}
			q.Set("from", window.From.Format(time.RFC3339))
			q.Set("to", window.To.Format(time.RFC3339))
			if after != "" {
				q.Set("after", after)
			}
			var page metaPage
			if err := a.t.do(ctx, http.MethodGet, "/v1/meta/campaigns", q, nil, &page); err != nil {
				return err
			}
			for _, mc := range page.Data {
				if seen[mc.ID] {
					return domain.NewAdapterError(domain.PlatformMeta, domain.AdapterRejected,
						fmt.Errorf("%w: %s", domain.ErrDuplicateCampaign, mc.ID))
				}
				seen[mc.ID] = true
				item, err := normalizeMeta(mc)
				if err != nil {
					return domain.NewAdapterError(domain.PlatformMeta, domain.AdapterRejected, err)
				}
				items = append(items, item)
			}
			if page.Paging.Next == "" || page.Paging.Cursors.After == "" {
				return nil
			}
			after = page.Paging.Cursors.After
		}
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateBudget patches the campaign's daily budget, sending money back in
// Meta's decimal-string form. Serialized per adapter.
func (a *MetaAdapter) UpdateBudget(ctx context.Context, externalID string, newBudgetMicros int64) error {
	a.updateMu.Lock()
	defer a.updateMu.Unlock()
	body := map[string]string{"daily_budget": formatMoneyMicros(newBudgetMicros)}
	path := fmt.Sprintf("/v1/meta/campaigns/%s/budget", url.PathEscape(externalID))
	return a.t.withRetry(ctx, "update budget", func(ctx context.Context) error {
		return a.t.do(ctx, http.MethodPatch, path, nil, body, nil)
	})
}

func normalizeMeta(mc metaCampaign) (domain.CampaignMetrics, error) {
	daily, err := parseMoneyMicros(mc.DailyBudget)
	if err != nil {
		return domain.CampaignMetrics{}, fmt.Errorf("campaign %s daily_budget: %w", mc.ID, err)
	}
	var lifetime int64
	if mc.LifetimeBudget != "" {
		if lifetime, err = parseMoneyMicros(mc.LifetimeBudget); err != nil {
			return domain.CampaignMetrics{}, fmt.Errorf("campaign %s lifetime_budget: %w", mc.ID, err)
		}
	}
	spend, err := parseMoneyMicros(orZero(mc.Insights.Spend))
	if err != nil {
		return domain.CampaignMetrics{}, fmt.Errorf("campaign %s spend: %w", mc.ID, err)
	}
	value, err := parseMoneyMicros(orZero(mc.Insights.ConversionValue))
	if err != nil {
		return domain.CampaignMetrics{}, fmt.Errorf("campaign %s conversion_value: %w", mc.ID, err)
	}
	impressions, err := parseCount(mc.Insights.Impressions)
	if err != nil {
		return domain.CampaignMetrics{}, fmt.Errorf("campaign %s impressions: %w", mc.ID, err)
	}
	clicks, err := parseCount(mc.Insights.Clicks)
	if err != nil {
		return domain.CampaignMetrics{}, fmt.Errorf("campaign %s clicks: %w", mc.ID, err)
	}
	conversions, err := parseCount(mc.Insights.Conversions)
	if err != nil {
		return domain.CampaignMetrics{}, fmt.Errorf("campaign %s conversions: %w", mc.ID, err)
	}
	return domain.CampaignMetrics{
		Campaign: domain.Campaign{
			Platform:          domain.PlatformMeta,
			ExternalID:        mc.ID,
			Name:              mc.Name,
			Status:            normalizeMetaStatus(mc.Status),
			BudgetMicros:      lifetime,
			DailyBudgetMicros: daily,
			UpdatedAt:         time.Now().UTC(),
		},
		Metrics: domain.MetricsSnapshot{
			Impressions:           impressions,
			Clicks:                clicks,
			Conversions:           conversions,
			CostMicros:            spend,
			ConversionValueMicros: value,
		},
	}, nil
}

// normalizeMetaStatus maps Meta's campaign statuses onto the unified set.
func normalizeMetaStatus(s string) domain.CampaignStatus {
	switch s {
	case "ACTIVE":
		return domain.StatusEnabled
	case "PAUSED":
		return domain.StatusPaused
	case "DELETED", "ARCHIVED":
		return domain.StatusRemoved
	default:
		return domain.CampaignStatus(s)
	}
}

func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
