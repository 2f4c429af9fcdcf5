package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteService
}

func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// -----------------------------------------------------------------------------
// POST /favorites/{id}
// -----------------------------------------------------------------------------
func (c *FavoriteController) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	fav, err := c.favoriteService.Save(r.Context(), userID, listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, fav)
}

// -----------------------------------------------------------------------------
// DELETE /favorites/{id}
// -----------------------------------------------------------------------------
func (c *FavoriteController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.favoriteService.Remove(r.Context(), userID, listingID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Favorite removed"})
}

// -----------------------------------------------------------------------------
// GET /favorites
// -----------------------------------------------------------------------------
func (c *FavoriteController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	entries, err := c.favoriteService.ListMine(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// -----------------------------------------------------------------------------
// GET /favorites/{id}
// -----------------------------------------------------------------------------
func (c *FavoriteController) IsSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	listingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	saved, err := c.favoriteService.IsSaved(r.Context(), userID, listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}
