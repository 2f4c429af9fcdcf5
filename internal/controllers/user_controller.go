package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
)

type UserController struct {
	userRepo repositories.UserRepository
}

func NewUserController(userRepo repositories.UserRepository) *UserController {
	return &UserController{userRepo: userRepo}
}

// -----------------------------------------------------------------------------
// GET /users/me
// -----------------------------------------------------------------------------
func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := c.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if user == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "User not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}

// -----------------------------------------------------------------------------
// PUT /users/me
// -----------------------------------------------------------------------------
func (c *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if user == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "User not found", nil)
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.PhoneNumber != "" {
		normalized, nErr := utils.NormalizeMSISDN(req.PhoneNumber)
		if nErr != nil {
			respondServiceError(w, nErr)
			return
		}
		user.PhoneNumber = &normalized
	}

	if err := c.userRepo.Update(r.Context(), user); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}
