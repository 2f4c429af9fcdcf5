package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken backs the emailed reset link. Single use.
type PasswordResetToken struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (t *PasswordResetToken) IsUsable() bool {
	return t.UsedAt == nil && time.Now().Before(t.ExpiresAt)
}
