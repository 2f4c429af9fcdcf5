package controllers

import (
	"net/http"

	"github.com/Keyroamos/hunt/internal/dtos"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

type AuthController struct {
	authService services.AuthService
	jwtService  services.JWTService
}

func NewAuthController(authService services.AuthService, jwtService services.JWTService) *AuthController {
	return &AuthController{authService: authService, jwtService: jwtService}
}

// -----------------------------------------------------------------------------
// POST /auth/register
// -----------------------------------------------------------------------------
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, access, refresh, err := c.authService.Register(r.Context(), services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Role:        models.RoleType(req.Role),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.AuthResponse{
		User:         dtos.NewUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// -----------------------------------------------------------------------------
// POST /auth/login
// -----------------------------------------------------------------------------
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, access, refresh, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AuthResponse{
		User:         dtos.NewUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// -----------------------------------------------------------------------------
// POST /auth/refresh
// -----------------------------------------------------------------------------
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	access, refresh, err := c.jwtService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// -----------------------------------------------------------------------------
// POST /auth/logout
// -----------------------------------------------------------------------------
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.jwtService.Logout(r.Context(), req.RefreshToken); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Logged out"})
}

// -----------------------------------------------------------------------------
// POST /auth/change-password
// -----------------------------------------------------------------------------
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.authService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Password updated"})
}

// -----------------------------------------------------------------------------
// POST /auth/password-reset
// -----------------------------------------------------------------------------
func (c *AuthController) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dtos.PasswordResetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respondServiceError(w, err)
		return
	}
	// same response whether or not the account exists
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Message: "If that email is registered, a reset link has been sent",
	})
}

// -----------------------------------------------------------------------------
// GET /auth/password-reset/validate?token=...
// -----------------------------------------------------------------------------
func (c *AuthController) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing token", nil)
		return
	}

	valid, err := c.authService.ValidateResetToken(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.TokenValidityResponse{Valid: valid})
}

// -----------------------------------------------------------------------------
// POST /auth/password-reset/confirm
// -----------------------------------------------------------------------------
func (c *AuthController) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dtos.PasswordResetConfirmRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.authService.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Password has been reset"})
}
