package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry opens a conversation between a hunter and a listing's owner.
type Inquiry struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	UserID       uuid.UUID `json:"user_id"`
	Message      string    `json:"message"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Message is a follow-up inside an inquiry thread, from either party.
type Message struct {
	ID        uuid.UUID `json:"id"`
	InquiryID uuid.UUID `json:"inquiry_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
