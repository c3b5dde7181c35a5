package models

import "time"

// Feature kinds. TimeBounded features carry an expiry and stack by
// extending it; Counted features carry a consumable quantity and stack
// by summing.
const (
	FeatureKindHighlight = "highlight"
	FeatureKindSpotlight = "spotlight"
	FeatureKindBoost     = "boost"
)

// TimeBoundedKinds lists the feature kinds that expire rather than deplete
var TimeBoundedKinds = map[string]bool{
	FeatureKindHighlight: true,
	FeatureKindSpotlight: true,
}

// ActiveFeature represents a benefit currently applied to a listing.
// At most one row exists per (listing, kind) pair; grants merge into the
// existing row instead of inserting duplicates.
type ActiveFeature struct {
	ListingID string     `json:"listing_id" db:"listing_id"`
	Kind      string     `json:"kind" db:"kind"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	Remaining int        `json:"remaining" db:"remaining"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// FeatureGrant defines what a single unit of an ad package confers
type FeatureGrant struct {
	Kind         string `json:"kind" db:"kind"`
	DurationDays int    `json:"duration_days" db:"duration_days"`
	Quantity     int    `json:"quantity" db:"quantity"`
}

// AdPackage represents a purchasable promotion package
type AdPackage struct {
	ID     string         `json:"id" db:"id"`
	Name   string         `json:"name" db:"name"`
	Price  int64          `json:"price" db:"price"`
	Grants []FeatureGrant `json:"grants"`
}
