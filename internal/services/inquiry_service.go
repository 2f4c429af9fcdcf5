package services

import (
	"context"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

// InquiryThread is an inquiry with its message history.
type InquiryThread struct {
	Inquiry  *models.Inquiry   `json:"inquiry"`
	Listing  *models.Listing   `json:"listing,omitempty"`
	Messages []*models.Message `json:"messages"`
	Unread   int64             `json:"unread"`
}

type InquiryService interface {
	Create(ctx context.Context, userID, listingID uuid.UUID, message, contactPhone string) (*models.Inquiry, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inquiry, error)
	Thread(ctx context.Context, userID, inquiryID uuid.UUID) (*InquiryThread, error)
	Reply(ctx context.Context, userID, inquiryID uuid.UUID, content string) (*models.Message, error)
	MarkRead(ctx context.Context, userID, inquiryID uuid.UUID) error
}

type inquiryService struct {
	inquiryRepo repositories.InquiryRepository
	messageRepo repositories.MessageRepository
	listingRepo repositories.ListingRepository
}

func NewInquiryService(
	inquiryRepo repositories.InquiryRepository,
	messageRepo repositories.MessageRepository,
	listingRepo repositories.ListingRepository,
) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		messageRepo: messageRepo,
		listingRepo: listingRepo,
	}
}

func (s *inquiryService) Create(ctx context.Context, userID, listingID uuid.UUID, message, contactPhone string) (*models.Inquiry, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNoRowsUpdated
	}

	if contactPhone != "" {
		normalized, nErr := utils.NormalizeMSISDN(contactPhone)
		if nErr != nil {
			return nil, nErr
		}
		contactPhone = normalized
	}

	inq := &models.Inquiry{
		ID:           uuid.New(),
		ListingID:    listingID,
		UserID:       userID,
		Message:      message,
		ContactPhone: contactPhone,
	}
	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}

	// the opening message doubles as the first entry of the thread
	first := &models.Message{
		ID:        uuid.New(),
		InquiryID: inq.ID,
		SenderID:  userID,
		Content:   message,
	}
	if err := s.messageRepo.Create(ctx, first); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *inquiryService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inquiry, error) {
	return s.inquiryRepo.ListForUser(ctx, userID)
}

func (s *inquiryService) Thread(ctx context.Context, userID, inquiryID uuid.UUID) (*InquiryThread, error) {
	inq, l, err := s.participantInquiry(ctx, userID, inquiryID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.ListByInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	unread, err := s.messageRepo.CountUnreadForUser(ctx, inquiryID, userID)
	if err != nil {
		return nil, err
	}

	return &InquiryThread{
		Inquiry:  inq,
		Listing:  l,
		Messages: msgs,
		Unread:   unread,
	}, nil
}

// Reply is restricted to the inquiry's creator and the listing's owner.
func (s *inquiryService) Reply(ctx context.Context, userID, inquiryID uuid.UUID, content string) (*models.Message, error) {
	if _, _, err := s.participantInquiry(ctx, userID, inquiryID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:        uuid.New(),
		InquiryID: inquiryID,
		SenderID:  userID,
		Content:   content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *inquiryService) MarkRead(ctx context.Context, userID, inquiryID uuid.UUID) error {
	if _, _, err := s.participantInquiry(ctx, userID, inquiryID); err != nil {
		return err
	}
	_, err := s.messageRepo.MarkReadExceptSender(ctx, inquiryID, userID)
	return err
}

func (s *inquiryService) participantInquiry(ctx context.Context, userID, inquiryID uuid.UUID) (*models.Inquiry, *models.Listing, error) {
	inq, err := s.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, nil, err
	}
	if inq == nil {
		return nil, nil, utils.ErrNoRowsUpdated
	}

	l, err := s.listingRepo.GetByID(ctx, inq.ListingID)
	if err != nil {
		return nil, nil, err
	}

	isCreator := inq.UserID == userID
	isOwner := l != nil && l.OwnerID == userID
	if !isCreator && !isOwner {
		return nil, nil, utils.ErrNotParticipant
	}
	return inq, l, nil
}
