package dtos

import (
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
)

// ----------------------
// Requests
// ----------------------

type PromoteListingRequest struct {
	DurationDays int    `json:"duration_days" validate:"omitempty,gt=0"`
	PhoneNumber  string `json:"phone_number,omitempty" validate:"omitempty"`
}

type VerificationPaymentRequest struct {
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty"`
}

type ContactAccessRequest struct {
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// ----------------------
// Responses
// ----------------------

type PaymentResponse struct {
	ID        uuid.UUID  `json:"id"`
	ListingID *uuid.UUID `json:"listing_id,omitempty"`
	Amount    float64    `json:"amount"`
	Type      string     `json:"payment_type"`
	Status    string     `json:"status"`
	Reference string     `json:"payment_reference"`
	Method    string     `json:"payment_method"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		ListingID: p.ListingID,
		Amount:    p.Amount,
		Type:      string(p.Type),
		Status:    string(p.Status),
		Reference: p.Reference,
		Method:    p.Method,
		CreatedAt: p.CreatedAt,
	}
}

func NewPaymentResponses(payments []*models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return out
}

type ContactAccessResponse struct {
	HasAccess   bool    `json:"has_access"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
}
