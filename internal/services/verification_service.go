package services

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

// VerificationStatus is the landlord-facing view of their verification.
type VerificationStatus struct {
	IsVerified bool                         `json:"is_verified"`
	FeePaid    bool                         `json:"fee_paid"`
	Document   *models.VerificationDocument `json:"document,omitempty"`
}

type VerificationService interface {
	// SubmitDocument stores (or replaces) the landlord's KYC document and
	// puts it back in the review queue.
	SubmitDocument(ctx context.Context, userID uuid.UUID, documentURL string) (*models.VerificationDocument, error)
	Status(ctx context.Context, userID uuid.UUID) (*VerificationStatus, error)

	// Review approves or rejects a pending document. Approval is what
	// actually marks the landlord verified.
	Review(ctx context.Context, docID uuid.UUID, approve bool, reason string) error
	PendingQueue(ctx context.Context) ([]*models.VerificationDocument, error)
}

type verificationService struct {
	docRepo     repositories.VerificationDocumentRepository
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository
}

func NewVerificationService(
	docRepo repositories.VerificationDocumentRepository,
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
) VerificationService {
	return &verificationService{
		docRepo:     docRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *verificationService) SubmitDocument(ctx context.Context, userID uuid.UUID, documentURL string) (*models.VerificationDocument, error) {
	doc := &models.VerificationDocument{
		ID:          uuid.New(),
		UserID:      userID,
		DocumentURL: documentURL,
		Status:      models.DocumentStatusPending,
	}
	if err := s.docRepo.Upsert(ctx, doc); err != nil {
		return nil, err
	}
	return s.docRepo.GetByUser(ctx, userID)
}

func (s *verificationService) Status(ctx context.Context, userID uuid.UUID) (*VerificationStatus, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	feePaid, err := s.paymentRepo.HasCompleted(ctx, userID, models.PaymentTypeVerification, nil)
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &VerificationStatus{
		IsVerified: user.IsVerified,
		FeePaid:    feePaid,
		Document:   doc,
	}, nil
}

func (s *verificationService) Review(ctx context.Context, docID uuid.UUID, approve bool, reason string) error {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return utils.ErrNoRowsUpdated
	}

	now := time.Now()
	if approve {
		if err := s.docRepo.UpdateStatus(ctx, docID, models.DocumentStatusApproved, "", now); err != nil {
			return err
		}
		return s.userRepo.SetVerified(ctx, doc.UserID, now)
	}
	return s.docRepo.UpdateStatus(ctx, docID, models.DocumentStatusRejected, reason, now)
}

func (s *verificationService) PendingQueue(ctx context.Context) ([]*models.VerificationDocument, error) {
	return s.docRepo.ListByStatus(ctx, models.DocumentStatusPending)
}
