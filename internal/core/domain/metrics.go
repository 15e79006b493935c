package domain

// MetricsSnapshot holds raw performance counters for a campaign over a
// reporting window. Values are non-negative; monetary amounts are micros.
type MetricsSnapshot struct {
	Impressions           int64
	Clicks                int64
	Conversions           int64
	CostMicros            int64
	ConversionValueMicros int64
}

// DerivedMetrics are computed from a MetricsSnapshot. CPA and ROI are
// undefined when their denominator is zero; the Defined flags are the
// sentinel for that state. An undefined value must never be read as zero.
type DerivedMetrics struct {
	CTR        float64
	CPAMicros  int64
	ROI        float64
	CPADefined bool
	ROIDefined bool
}

// Derive computes CTR, CPA and ROI from the snapshot. It is pure and
// deterministic.
func Derive(m MetricsSnapshot) DerivedMetrics {
	var d DerivedMetrics
	if m.Impressions > 0 {
		d.CTR = float64(m.Clicks) / float64(m.Impressions)
	}
	if m.Conversions > 0 {
		d.CPAMicros = m.CostMicros / m.Conversions
		d.CPADefined = true
	}
	// ROI needs both spend and a conversion signal; a campaign that spent
	// without converting is insufficient data, not a -100% ROI.
	if m.CostMicros > 0 && m.Conversions > 0 {
		d.ROI = float64(m.ConversionValueMicros-m.CostMicros) / float64(m.CostMicros)
		d.ROIDefined = true
	}
	return d
}

// CampaignMetrics pairs a campaign with its metrics for one window.
type CampaignMetrics struct {
	Campaign Campaign
	Metrics  MetricsSnapshot
}

// AggregationResult is the unified campaign view assembled from all
// configured platforms. Degraded is set when at least one platform could
// not be fetched; FailedPlatforms names them.
type AggregationResult struct {
	Items           []CampaignMetrics
	Degraded        bool
	FailedPlatforms []Platform
}
