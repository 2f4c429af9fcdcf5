package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the DB-backed half of the bearer-token pair. The access
// JWT is stateless; refresh tokens are stored so they can be revoked.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
