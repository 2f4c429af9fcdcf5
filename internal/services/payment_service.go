package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/constants"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/Keyroamos/hunt/internal/utils/paystack"
	"github.com/google/uuid"
)

// PaymentInitResult is what the client needs to continue a payment: either
// an STK push was sent (Reference + DisplayText) or the client must be
// redirected to AuthorizationURL.
type PaymentInitResult struct {
	Reference        string  `json:"reference"`
	Status           string  `json:"status"`
	DisplayText      string  `json:"display_text,omitempty"`
	AuthorizationURL string  `json:"authorization_url,omitempty"`
	Amount           float64 `json:"amount"`
}

// VerifyResult reports the gateway's view of a reference. Payment is set
// only once the transaction is confirmed and recorded.
type VerifyResult struct {
	Status  string          `json:"status"`
	Payment *models.Payment `json:"payment,omitempty"`
}

type PaymentService interface {
	InitiatePromotion(ctx context.Context, userID, listingID uuid.UUID, durationDays int, phone string) (*PaymentInitResult, error)
	InitiateVerification(ctx context.Context, userID uuid.UUID, phone string) (*PaymentInitResult, error)
	InitiateContactAccess(ctx context.Context, userID, listingID uuid.UUID, phone string) (*PaymentInitResult, error)

	VerifyReference(ctx context.Context, reference string) (*VerifyResult, error)
	HasContactAccess(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error)
}

type paymentService struct {
	cfg          *config.Config
	gateway      *paystack.Client
	paymentRepo  repositories.PaymentRepository
	listingRepo  repositories.ListingRepository
	userRepo     repositories.UserRepository
	emailService EmailService
}

func NewPaymentService(
	cfg *config.Config,
	gateway *paystack.Client,
	paymentRepo repositories.PaymentRepository,
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
	emailService EmailService,
) PaymentService {
	return &paymentService{
		cfg:          cfg,
		gateway:      gateway,
		paymentRepo:  paymentRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

func (s *paymentService) InitiatePromotion(ctx context.Context, userID, listingID uuid.UUID, durationDays int, phone string) (*PaymentInitResult, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNoRowsUpdated
	}
	if l.OwnerID != userID {
		return nil, utils.ErrNotOwner
	}

	price, days := constants.PromotionPrice(durationDays)
	meta := paystack.Metadata{
		UserID:       userID.String(),
		Type:         string(models.PaymentTypePromotion),
		ListingID:    listingID.String(),
		DurationDays: days,
	}
	return s.initiate(ctx, userID, price, phone, meta)
}

func (s *paymentService) InitiateVerification(ctx context.Context, userID uuid.UUID, phone string) (*PaymentInitResult, error) {
	meta := paystack.Metadata{
		UserID: userID.String(),
		Type:   string(models.PaymentTypeVerification),
	}
	return s.initiate(ctx, userID, constants.VerificationFee, phone, meta)
}

func (s *paymentService) InitiateContactAccess(ctx context.Context, userID, listingID uuid.UUID, phone string) (*PaymentInitResult, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNoRowsUpdated
	}

	paid, err := s.HasContactAccess(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, utils.ErrAlreadyPaid
	}

	meta := paystack.Metadata{
		UserID:    userID.String(),
		Type:      string(models.PaymentTypeContactAccess),
		ListingID: listingID.String(),
	}
	return s.initiate(ctx, userID, constants.ContactAccessFee, phone, meta)
}

// initiate runs the gateway call. With a phone number we push an M-Pesa STK
// prompt; without one we fall back to a redirect checkout session.
func (s *paymentService) initiate(ctx context.Context, userID uuid.UUID, amount float64, phone string, meta paystack.Metadata) (*PaymentInitResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	minorUnits := int64(amount * 100)

	if phone != "" {
		msisdn, nErr := utils.NormalizeMSISDN(phone)
		if nErr != nil {
			return nil, nErr
		}

		data, cErr := s.gateway.Charge(ctx, paystack.ChargeRequest{
			Email:    user.Email,
			Amount:   minorUnits,
			Currency: constants.Currency,
			MobileMoney: paystack.MobileMoney{
				Phone:    msisdn,
				Provider: constants.MobileMoneyProvider,
			},
			Metadata: meta,
		})
		if cErr != nil {
			utils.Logger.WithError(cErr).Error("Paystack charge failed")
			return nil, fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, cErr)
		}
		return &PaymentInitResult{
			Reference:   data.Reference,
			Status:      data.Status,
			DisplayText: data.DisplayText,
			Amount:      amount,
		}, nil
	}

	data, iErr := s.gateway.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:       user.Email,
		Amount:      minorUnits,
		Currency:    constants.Currency,
		CallbackURL: s.cfg.FrontendURL + "/payments/callback",
		Metadata:    meta,
	})
	if iErr != nil {
		utils.Logger.WithError(iErr).Error("Paystack initialize failed")
		return nil, fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, iErr)
	}
	return &PaymentInitResult{
		Reference:        data.Reference,
		Status:           "pending",
		AuthorizationURL: data.AuthorizationURL,
		Amount:           amount,
	}, nil
}

// VerifyReference asks the gateway for the state of a reference and, on
// success, records the payment and applies its effect. Re-verifying an
// already-recorded reference is harmless: the insert is skipped and so are
// the side effects.
func (s *paymentService) VerifyReference(ctx context.Context, reference string) (*VerifyResult, error) {
	data, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		utils.Logger.WithError(err).Error("Paystack verify failed")
		return nil, fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, err)
	}

	if data.Status != paystack.TransactionStatusSuccess {
		return &VerifyResult{Status: data.Status}, nil
	}

	userID, err := uuid.Parse(data.Metadata.UserID)
	if err != nil {
		return nil, fmt.Errorf("bad user_id in gateway metadata: %w", err)
	}

	var listingID *uuid.UUID
	if data.Metadata.ListingID != "" {
		id, pErr := uuid.Parse(data.Metadata.ListingID)
		if pErr != nil {
			return nil, fmt.Errorf("bad listing_id in gateway metadata: %w", pErr)
		}
		listingID = &id
	}

	payment := &models.Payment{
		ID:        uuid.New(),
		UserID:    userID,
		ListingID: listingID,
		Amount:    float64(data.Amount) / 100,
		Type:      models.PaymentType(data.Metadata.Type),
		Status:    models.PaymentStatusCompleted,
		Reference: data.Reference,
		Method:    data.Channel,
	}

	inserted, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return &VerifyResult{Status: data.Status, Payment: payment}, nil
	}

	if err := s.applyEffect(ctx, payment, data.Metadata.DurationDays); err != nil {
		return nil, err
	}
	s.confirmByEmail(ctx, payment)

	return &VerifyResult{Status: data.Status, Payment: payment}, nil
}

// applyEffect runs the purchased action. A verification payment does not
// verify the landlord by itself; staff still review the submitted document.
func (s *paymentService) applyEffect(ctx context.Context, p *models.Payment, durationDays int) error {
	switch p.Type {
	case models.PaymentTypePromotion:
		if p.ListingID == nil {
			return fmt.Errorf("promotion payment %s has no listing", p.Reference)
		}
		if durationDays <= 0 {
			durationDays = constants.DefaultPromotionDays
		}
		// A new purchase restarts the window rather than stacking onto
		// whatever was left.
		until := time.Now().AddDate(0, 0, durationDays)
		return s.listingRepo.SetPromotion(ctx, *p.ListingID, until)
	case models.PaymentTypeVerification, models.PaymentTypeContactAccess, models.PaymentTypeListingUpload:
		return nil
	default:
		utils.Logger.Warnf("Unknown payment type %q for reference %s", p.Type, p.Reference)
		return nil
	}
}

func (s *paymentService) confirmByEmail(ctx context.Context, p *models.Payment) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil || user == nil {
		return
	}
	desc := paymentDescription(p.Type)
	if mailErr := s.emailService.SendPaymentConfirmationEmail(user.Email, user.FirstName, desc, p.Amount, p.Reference); mailErr != nil {
		utils.Logger.WithError(mailErr).Warnf("Payment confirmation email failed for %s", user.Email)
	}
}

func paymentDescription(t models.PaymentType) string {
	switch t {
	case models.PaymentTypePromotion:
		return "Your listing promotion is now active."
	case models.PaymentTypeVerification:
		return "Your verification fee was received. Our team will review your document shortly."
	case models.PaymentTypeContactAccess:
		return "You now have access to the landlord's contact details."
	default:
		return "Thank you for your payment."
	}
}

func (s *paymentService) HasContactAccess(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	return s.paymentRepo.HasCompleted(ctx, userID, models.PaymentTypeContactAccess, &listingID)
}

func (s *paymentService) ListMine(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}
