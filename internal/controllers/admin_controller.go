package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

type AdminController struct {
	adminService        services.AdminService
	verificationService services.VerificationService
}

func NewAdminController(adminService services.AdminService, verificationService services.VerificationService) *AdminController {
	return &AdminController{adminService: adminService, verificationService: verificationService}
}

// -----------------------------------------------------------------------------
// GET /admin/stats
// -----------------------------------------------------------------------------
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.adminService.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// -----------------------------------------------------------------------------
// GET /admin/activity
// -----------------------------------------------------------------------------
func (c *AdminController) RecentActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := c.adminService.RecentActivity(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, activity)
}

// -----------------------------------------------------------------------------
// GET /admin/users
// -----------------------------------------------------------------------------
func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	users, err := c.adminService.AllUsers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponses(users))
}

// -----------------------------------------------------------------------------
// GET /admin/users/{id}
// -----------------------------------------------------------------------------
func (c *AdminController) UserDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	details, err := c.adminService.UserDetails(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, details)
}

// -----------------------------------------------------------------------------
// POST /admin/users/{id}/toggle-active
// -----------------------------------------------------------------------------
func (c *AdminController) ToggleUserActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := c.adminService.ToggleUserActive(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}

// -----------------------------------------------------------------------------
// POST /admin/users/{id}/verify
// -----------------------------------------------------------------------------
func (c *AdminController) VerifyUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := c.adminService.VerifyUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}

// -----------------------------------------------------------------------------
// POST /admin/users
// -----------------------------------------------------------------------------
func (c *AdminController) CreateStaffUser(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.adminService.CreateStaffUser(r.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewUserResponse(user))
}

// -----------------------------------------------------------------------------
// GET /admin/listings
// -----------------------------------------------------------------------------
func (c *AdminController) Listings(w http.ResponseWriter, r *http.Request) {
	listings, err := c.adminService.AllListings(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListingResponses(listings))
}

// -----------------------------------------------------------------------------
// POST /admin/listings/{id}/toggle-published
// -----------------------------------------------------------------------------
func (c *AdminController) ToggleListingPublished(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := c.adminService.ToggleListingPublished(r.Context(), listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListingResponse(l))
}

// -----------------------------------------------------------------------------
// DELETE /admin/listings/{id}
// -----------------------------------------------------------------------------
func (c *AdminController) DeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteListing(r.Context(), listingID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Listing deleted"})
}

// -----------------------------------------------------------------------------
// GET /admin/verifications
// -----------------------------------------------------------------------------
func (c *AdminController) PendingVerifications(w http.ResponseWriter, r *http.Request) {
	docs, err := c.verificationService.PendingQueue(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, docs)
}

// -----------------------------------------------------------------------------
// POST /admin/verifications/{id}/review
// -----------------------------------------------------------------------------
func (c *AdminController) ReviewVerification(w http.ResponseWriter, r *http.Request) {
	docID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.ReviewDocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.verificationService.Review(r.Context(), docID, req.Approve, req.Reason); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Review recorded"})
}

// -----------------------------------------------------------------------------
// GET /admin/revenue
// -----------------------------------------------------------------------------
func (c *AdminController) Revenue(w http.ResponseWriter, r *http.Request) {
	report, err := c.adminService.Revenue(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
