package models

import (
	"time"
)

// Dress listing status values.
const (
	DressStatusAvailable = "available"
	DressStatusSold      = "sold"
)

// Defaults applied when a listing is created without the optional fields.
const (
	DefaultDressDescription = "Pre-loved item"
	DefaultDressCategory    = "Cocktail"
	DefaultDressSize        = "M"
	DefaultDressCondition   = "Good"
)

// Dress represents a single resellable clothing item posted by a user.
type Dress struct {
	ID            uint      `json:"id"`
	SellerID      uint      `json:"sellerId"`
	Brand         string    `json:"brand"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Size          string    `json:"size"`
	Condition     string    `json:"condition"`
	ButtonsPrice  int       `json:"buttonsPrice"`
	OriginalPrice int       `json:"originalPrice"`
	Images        []string  `json:"images"`
	Status        string    `json:"status"`
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Available reports whether the dress can still be purchased.
func (d *Dress) Available() bool {
	return d.Status == DressStatusAvailable
}

// TrendingScore is the ranking score for the trending feed. It is computed
// on demand and never persisted.
func (d *Dress) TrendingScore() float64 {
	return float64(d.Likes) + 0.1*float64(d.Views)
}

// DressWithSeller is a listing enriched with the reduced seller view, as
// returned by browse, feed, and favorites endpoints.
type DressWithSeller struct {
	Dress
	Seller UserSummary `json:"seller"`
}

// DressDetail is the single-listing view with the extended seller profile.
type DressDetail struct {
	Dress
	Seller SellerProfile `json:"seller"`
}

// DressSummary is the reduced listing view embedded in transaction history.
type DressSummary struct {
	ID     uint     `json:"id"`
	Title  string   `json:"title"`
	Brand  string   `json:"brand"`
	Images []string `json:"images"`
}

// Summary returns the reduced view of the dress.
func (d *Dress) Summary() DressSummary {
	return DressSummary{ID: d.ID, Title: d.Title, Brand: d.Brand, Images: d.Images}
}
