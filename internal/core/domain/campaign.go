package domain

import "time"

// Platform identifies the advertising platform a campaign belongs to.
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// CampaignStatus mirrors the vendor-side campaign state.
type CampaignStatus string

const (
	StatusEnabled CampaignStatus = "ENABLED"
	StatusPaused  CampaignStatus = "PAUSED"
	StatusRemoved CampaignStatus = "REMOVED"
)

// Campaign is the unified representation of an advertising campaign across
// platforms. A campaign is uniquely identified by (Platform, ExternalID).
// All monetary amounts are micros (1_000_000 micros = 1 currency unit).
// ID is the local database id and is zero until the campaign has been
// persisted.
type Campaign struct {
	ID                int64
	Platform          Platform
	ExternalID        string
	Name              string
	Status            CampaignStatus
	BudgetMicros      int64
	DailyBudgetMicros int64
	UpdatedAt         time.Time
}

// Key returns the cross-platform identity of the campaign.
func (c Campaign) Key() CampaignKey {
	return CampaignKey{Platform: c.Platform, ExternalID: c.ExternalID}
}

// CampaignKey is the unique identity of a campaign across platforms.
type CampaignKey struct {
	Platform   Platform
	ExternalID string
}

// Less defines the stable ordering used for ranking tie-breaks: platform
// first, then external id, both ascending.
func (k CampaignKey) Less(other CampaignKey) bool {
	if k.Platform != other.Platform {
		return k.Platform < other.Platform
	}
	return k.ExternalID < other.ExternalID
}

// Window is the reporting window metrics are fetched for.
type Window struct {
	From time.Time
	To   time.Time
}

// LastDays returns a window covering the past n days up to now.
func LastDays(n int) Window {
	now := time.Now().UTC()
	return Window{From: now.AddDate(0, 0, -n), To: now}
}
