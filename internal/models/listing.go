package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatusType tracks availability of a listing.
type ListingStatusType string

const (
	ListingStatusActive   ListingStatusType = "active"
	ListingStatusPending  ListingStatusType = "pending"
	ListingStatusRented   ListingStatusType = "rented"
	ListingStatusInactive ListingStatusType = "inactive"
)

// Listing is a rentable property record owned by one user.
type Listing struct {
	Versioned
	ID            uuid.UUID         `json:"id"`
	OwnerID       uuid.UUID         `json:"owner_id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	PropertyType  string            `json:"property_type"`
	Bedrooms      int               `json:"bedrooms"`
	Bathrooms     int               `json:"bathrooms"`
	RentPerMonth  float64           `json:"rent_per_month"`
	Deposit       float64           `json:"deposit"`
	Location      string            `json:"location"`
	Latitude      *float64          `json:"latitude,omitempty"`
	Longitude     *float64          `json:"longitude,omitempty"`
	Amenities     []string          `json:"amenities"`
	MapEmbed      string            `json:"map_embed,omitempty"`
	Status        ListingStatusType `json:"status"`
	IsPublished   bool              `json:"is_published"`
	IsPromoted    bool              `json:"is_promoted"`
	PromotedUntil *time.Time        `json:"promoted_until,omitempty"`
	Views         int64             `json:"views"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (l *Listing) GetID() string {
	return l.ID.String()
}

// HasCoordinates reports whether the listing can appear on the map view.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
