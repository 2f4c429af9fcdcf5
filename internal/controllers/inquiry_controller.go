package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

type InquiryController struct {
	inquiryService services.InquiryService
}

func NewInquiryController(inquiryService services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// -----------------------------------------------------------------------------
// POST /inquiries
// -----------------------------------------------------------------------------
func (c *InquiryController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateInquiryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid listing_id", nil, err)
		return
	}

	inq, err := c.inquiryService.Create(r.Context(), userID, listingID, req.Message, req.ContactPhone)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inq)
}

// -----------------------------------------------------------------------------
// GET /inquiries
// -----------------------------------------------------------------------------
func (c *InquiryController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	inquiries, err := c.inquiryService.ListForUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inquiries)
}

// -----------------------------------------------------------------------------
// GET /inquiries/{id}
// -----------------------------------------------------------------------------
func (c *InquiryController) Thread(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	inquiryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	thread, err := c.inquiryService.Thread(r.Context(), userID, inquiryID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, thread)
}

// -----------------------------------------------------------------------------
// POST /inquiries/{id}/messages
// -----------------------------------------------------------------------------
func (c *InquiryController) Reply(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	inquiryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.ReplyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	msg, err := c.inquiryService.Reply(r.Context(), userID, inquiryID, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, msg)
}

// -----------------------------------------------------------------------------
// POST /inquiries/{id}/read
// -----------------------------------------------------------------------------
func (c *InquiryController) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	inquiryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.inquiryService.MarkRead(r.Context(), userID, inquiryID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Marked as read"})
}
