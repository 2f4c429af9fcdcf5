package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
	listingRepo    repositories.ListingRepository
	userRepo       repositories.UserRepository
}

func NewPaymentController(
	paymentService services.PaymentService,
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		listingRepo:    listingRepo,
		userRepo:       userRepo,
	}
}

// -----------------------------------------------------------------------------
// POST /payments/promote/{id}
// -----------------------------------------------------------------------------
func (c *PaymentController) PromoteListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.PromoteListingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.paymentService.InitiatePromotion(r.Context(), userID, listingID, req.DurationDays, req.PhoneNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// POST /payments/verification
// -----------------------------------------------------------------------------
func (c *PaymentController) PayVerificationFee(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.VerificationPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.paymentService.InitiateVerification(r.Context(), userID, req.PhoneNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// POST /payments/contact-access/{id}
// -----------------------------------------------------------------------------
func (c *PaymentController) PayContactAccess(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.ContactAccessRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.paymentService.InitiateContactAccess(r.Context(), userID, listingID, req.PhoneNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// POST /payments/verify
// -----------------------------------------------------------------------------
func (c *PaymentController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req dtos.VerifyPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.paymentService.VerifyReference(r.Context(), req.Reference)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// GET /payments/mine
// -----------------------------------------------------------------------------
func (c *PaymentController) MyPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	payments, err := c.paymentService.ListMine(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPaymentResponses(payments))
}

// -----------------------------------------------------------------------------
// GET /payments/contact-access/{id}
//
// Landlord contact details are gated: the listing owner's phone and email
// are only revealed after a completed contact-access payment.
// -----------------------------------------------------------------------------
func (c *PaymentController) ContactDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	hasAccess, err := c.paymentService.HasContactAccess(r.Context(), userID, listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !hasAccess {
		utils.RespondWithJSON(w, http.StatusOK, dtos.ContactAccessResponse{HasAccess: false})
		return
	}

	l, err := c.listingRepo.GetByID(r.Context(), listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if l == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Listing not found", nil)
		return
	}
	owner, err := c.userRepo.GetByID(r.Context(), l.OwnerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if owner == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Owner not found", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ContactAccessResponse{
		HasAccess:   true,
		PhoneNumber: owner.PhoneNumber,
		Email:       &owner.Email,
	})
}
