package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatusType tracks operator review of an identity document.
type DocumentStatusType string

const (
	DocumentStatusPending  DocumentStatusType = "pending"
	DocumentStatusApproved DocumentStatusType = "approved"
	DocumentStatusRejected DocumentStatusType = "rejected"
)

// VerificationDocument holds the identity document a landlord submits for
// manual review. One per user; resubmission overwrites the previous upload
// and resets the status to pending.
type VerificationDocument struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	DocumentURL     string             `json:"document_url"`
	Status          DocumentStatusType `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	ReviewedAt      *time.Time         `json:"reviewed_at,omitempty"`
}
