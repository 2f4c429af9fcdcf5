package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a hunter to a saved listing, unique per pair.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
