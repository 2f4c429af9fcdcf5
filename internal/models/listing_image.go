package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingImage references an uploaded photo. At most one image per listing
// should be primary; this is enforced by reset-then-set on selection, not
// by a database constraint.
type ListingImage struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}
