package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType identifies what a payment purchased.
type PaymentType string

const (
	PaymentTypeVerification  PaymentType = "verification"
	PaymentTypeListingUpload PaymentType = "listing_upload"
	PaymentTypePromotion     PaymentType = "promotion"
	PaymentTypeContactAccess PaymentType = "contact_access"
)

// PaymentStatusType tracks the state of a payment record.
type PaymentStatusType string

const (
	PaymentStatusPending   PaymentStatusType = "pending"
	PaymentStatusCompleted PaymentStatusType = "completed"
	PaymentStatusFailed    PaymentStatusType = "failed"
)

// Payment is written once the gateway confirms a charge. The gateway
// reference is unique and acts as the deduplication key: verifying the
// same reference twice creates exactly one row.
type Payment struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	ListingID *uuid.UUID        `json:"listing_id,omitempty"`
	Amount    float64           `json:"amount"`
	Type      PaymentType       `json:"payment_type"`
	Status    PaymentStatusType `json:"status"`
	Reference string            `json:"payment_reference"`
	Method    string            `json:"payment_method"`
	CreatedAt time.Time         `json:"created_at"`
}
