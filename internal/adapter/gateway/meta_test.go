package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func TestMetaFetchCampaignsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/meta/campaigns", r.URL.Path)
		switch r.URL.Query().Get("after") {
		case "":
			io.WriteString(w, `{
				"data": [{
					"id": "m-2001",
					"name": "lookalike prospecting",
					"status": "ACTIVE",
					"daily_budget": "120.50",
					"lifetime_budget": "1000",
					"insights": {
						"impressions": "40000",
						"clicks": "800",
						"conversions": "16",
						"spend": "98.7654",
						"conversion_value": "310.20"
					}
				}],
				"paging": {"cursors": {"after": "cur-2"}, "next": "https://gw/v1/meta/campaigns?after=cur-2"}
			}`)
		case "cur-2":
			io.WriteString(w, `{
				"data": [
					{"id": "m-2002", "status": "PAUSED", "daily_budget": "40", "insights": {}},
					{"id": "m-2003", "status": "ARCHIVED", "daily_budget": "0", "insights": {}}
				],
				"paging": {"cursors": {}}
			}`)
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("after"))
		}
	}))
	defer srv.Close()

	a := NewMetaAdapter(testConfig(srv.URL), testLogger())
	items, err := a.FetchCampaigns(context.Background(), testWindow())
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	assert.Equal(t, domain.PlatformMeta, first.Campaign.Platform)
	assert.Equal(t, "m-2001", first.Campaign.ExternalID)
	assert.Equal(t, domain.StatusEnabled, first.Campaign.Status)
	assert.Equal(t, int64(120_500_000), first.Campaign.DailyBudgetMicros)
	assert.Equal(t, int64(1_000_000_000), first.Campaign.BudgetMicros)
	assert.Equal(t, int64(40_000), first.Metrics.Impressions)
	assert.Equal(t, int64(16), first.Metrics.Conversions)
	assert.Equal(t, int64(98_765_400), first.Metrics.CostMicros)
	assert.Equal(t, int64(310_200_000), first.Metrics.ConversionValueMicros)

	assert.Equal(t, domain.StatusPaused, items[1].Campaign.Status)
	assert.Equal(t, domain.StatusRemoved, items[2].Campaign.Status)
}

// Malformed money values are a contract violation and must fail the fetch
// without retrying.
func TestMetaFetchMalformedMoney(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		io.WriteString(w, `{
			"data": [{"id": "m-1", "status": "ACTIVE", "daily_budget": "12,50", "insights": {}}],
			"paging": {"cursors": {}}
		}`)
	}))
	defer srv.Close()

	a := NewMetaAdapter(testConfig(srv.URL), testLogger())
	_, err := a.FetchCampaigns(context.Background(), testWindow())

	var aerr *domain.AdapterError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, domain.AdapterRejected, aerr.Kind)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "daily_budget")
}

func TestMetaFetchDuplicateCampaign(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"data": [
				{"id": "m-1", "status": "ACTIVE", "daily_budget": "10", "insights": {}},
				{"id": "m-1", "status": "ACTIVE", "daily_budget": "10", "insights": {}}
			],
			"paging": {"cursors": {}}
		}`)
	}))
	defer srv.Close()

	a := NewMetaAdapter(testConfig(srv.URL), testLogger())
	_, err := a.FetchCampaigns(context.Background(), testWindow())
	assert.ErrorIs(t, err, domain.ErrDuplicateCampaign)
}

func TestMetaUpdateBudgetDecimalString(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := NewMetaAdapter(testConfig(srv.URL), testLogger())
	err := a.UpdateBudget(context.Background(), "m-2001", 120_500_000)
	require.NoError(t, err)

	assert.Equal(t, "/v1/meta/campaigns/m-2001/budget", gotPath)
	assert.Equal(t, map[string]string{"daily_budget": "120.5"}, gotBody)
}
