package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

type VerificationController struct {
	verificationService services.VerificationService
}

func NewVerificationController(verificationService services.VerificationService) *VerificationController {
	return &VerificationController{verificationService: verificationService}
}

// -----------------------------------------------------------------------------
// POST /verification/documents
// -----------------------------------------------------------------------------
func (c *VerificationController) SubmitDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.SubmitDocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	doc, err := c.verificationService.SubmitDocument(r.Context(), userID, req.DocumentURL)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, doc)
}

// -----------------------------------------------------------------------------
// GET /verification/status
// -----------------------------------------------------------------------------
func (c *VerificationController) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	status, err := c.verificationService.Status(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}
