package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		in   MetricsSnapshot
		want DerivedMetrics
	}{
		{
			name: "full data",
			in: MetricsSnapshot{
				Impressions:           1000,
				Clicks:                50,
				Conversions:           5,
				CostMicros:            90_000_000,
				ConversionValueMicros: 180_000_000,
			},
			want: DerivedMetrics{
				CTR:        0.05,
				CPAMicros:  18_000_000,
				CPADefined: true,
				ROI:        1.0,
				ROIDefined: true,
			},
		},
		{
			name: "zero conversions leaves CPA and ROI undefined",
			in: MetricsSnapshot{
				Impressions: 500,
				Clicks:      25,
				CostMicros:  45_000_000,
			},
			want: DerivedMetrics{CTR: 0.05},
		},
		{
			name: "zero cost leaves ROI undefined",
			in: MetricsSnapshot{
				Impressions:           100,
				Clicks:                10,
				Conversions:           2,
				ConversionValueMicros: 10_000_000,
			},
			want: DerivedMetrics{CTR: 0.1, CPAMicros: 0, CPADefined: true},
		},
		{
			name: "empty snapshot",
			in:   MetricsSnapshot{},
			want: DerivedMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.in))
		})
	}
}

func TestCampaignKeyLess(t *testing.T) {
	a := CampaignKey{Platform: PlatformGoogle, ExternalID: "2"}
	b := CampaignKey{Platform: PlatformMeta, ExternalID: "1"}
	c := CampaignKey{Platform: PlatformGoogle, ExternalID: "10"}

	assert.True(t, a.Less(b), "google sorts before meta")
	assert.True(t, c.Less(a), "external ids compare as strings")
	assert.False(t, a.Less(a))
}
