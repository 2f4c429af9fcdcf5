package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/middleware"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ListingController struct {
	listingService services.ListingService
}

func NewListingController(listingService services.ListingService) *ListingController {
	return &ListingController{listingService: listingService}
}

// searchFilter builds the filter for list/map endpoints. "mine=true" flips
// into owner mode when the caller is authenticated.
func searchFilter(r *http.Request) repositories.ListingFilter {
	var owner *uuid.UUID
	q := r.URL.Query()
	if q.Get("mine") == "true" || q.Get("mine") == "1" || q.Get("mine") == "True" {
		if id, ok := middleware.UserIDFromContext(r.Context()); ok {
			owner = &id
		}
	}
	return repositories.ParseListingFilter(q, owner)
}

// -----------------------------------------------------------------------------
// GET /listings
// -----------------------------------------------------------------------------
func (c *ListingController) Search(w http.ResponseWriter, r *http.Request) {
	listings, err := c.listingService.Search(r.Context(), searchFilter(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := dtos.NewListingResponses(listings)
	for i := range out {
		imgs, imgErr := c.listingService.Images(r.Context(), out[i].ID)
		if imgErr == nil {
			out[i].Images = dtos.NewListingImageResponses(imgs)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// GET /listings/map
// -----------------------------------------------------------------------------
func (c *ListingController) MapView(w http.ResponseWriter, r *http.Request) {
	pins, err := c.listingService.MapView(r.Context(), searchFilter(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pins)
}

// -----------------------------------------------------------------------------
// GET /listings/{idOrSlug}
// -----------------------------------------------------------------------------
func (c *ListingController) Get(w http.ResponseWriter, r *http.Request) {
	l, err := c.listingService.GetByIDOrSlug(r.Context(), mux.Vars(r)["idOrSlug"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if l == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Listing not found", nil)
		return
	}

	resp := dtos.NewListingResponse(l)
	if imgs, imgErr := c.listingService.Images(r.Context(), l.ID); imgErr == nil {
		resp.Images = dtos.NewListingImageResponses(imgs)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// -----------------------------------------------------------------------------
// POST /listings/{idOrSlug}/view
// -----------------------------------------------------------------------------
func (c *ListingController) RecordView(w http.ResponseWriter, r *http.Request) {
	l, err := c.listingService.GetByIDOrSlug(r.Context(), mux.Vars(r)["idOrSlug"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if l == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Listing not found", nil)
		return
	}

	views, err := c.listingService.RecordView(r.Context(), l.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ViewCountResponse{Views: views})
}

// -----------------------------------------------------------------------------
// POST /listings
// -----------------------------------------------------------------------------
func (c *ListingController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateListingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := c.listingService.Create(r.Context(), userID, listingInput(req, ""))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewListingResponse(l))
}

// -----------------------------------------------------------------------------
// PUT /listings/{id}
// -----------------------------------------------------------------------------
func (c *ListingController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdateListingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := c.listingService.Update(r.Context(), userID, listingID, listingInput(req.CreateListingRequest, req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListingResponse(l))
}

// -----------------------------------------------------------------------------
// DELETE /listings/{id}
// -----------------------------------------------------------------------------
func (c *ListingController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.listingService.Delete(r.Context(), userID, listingID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Listing deleted"})
}

// -----------------------------------------------------------------------------
// POST /listings/{id}/publish
// -----------------------------------------------------------------------------
func (c *ListingController) TogglePublish(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := c.listingService.TogglePublish(r.Context(), userID, listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListingResponse(l))
}

// -----------------------------------------------------------------------------
// GET /listings/{id}/stats
// -----------------------------------------------------------------------------
func (c *ListingController) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	stats, err := c.listingService.Stats(r.Context(), userID, listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// -----------------------------------------------------------------------------
// GET /listings/{id}/images
// -----------------------------------------------------------------------------
func (c *ListingController) Images(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	imgs, err := c.listingService.Images(r.Context(), listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewListingImageResponses(imgs))
}

// -----------------------------------------------------------------------------
// POST /listings/{id}/images
// -----------------------------------------------------------------------------
func (c *ListingController) AddImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.AddImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	img, err := c.listingService.AddImage(r.Context(), userID, listingID, req.ImageURL, req.IsPrimary)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewListingImageResponse(img))
}

// -----------------------------------------------------------------------------
// DELETE /listings/images/{imageID}
// -----------------------------------------------------------------------------
func (c *ListingController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	imageID, ok := pathUUID(w, r, "imageID")
	if !ok {
		return
	}

	if err := c.listingService.DeleteImage(r.Context(), userID, imageID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Image deleted"})
}

// -----------------------------------------------------------------------------
// POST /listings/images/{imageID}/primary
// -----------------------------------------------------------------------------
func (c *ListingController) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	imageID, ok := pathUUID(w, r, "imageID")
	if !ok {
		return
	}

	if err := c.listingService.SetPrimaryImage(r.Context(), userID, imageID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Primary image updated"})
}

func listingInput(req dtos.CreateListingRequest, status string) services.ListingInput {
	return services.ListingInput{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		RentPerMonth: req.RentPerMonth,
		Deposit:      req.Deposit,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Amenities:    req.Amenities,
		MapEmbed:     req.MapEmbed,
		Status:       status,
	}
}
