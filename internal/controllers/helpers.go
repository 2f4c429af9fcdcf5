package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Keyroamos/hunt/internal/middleware"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v4"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and validates it,
// responding on failure. Returns false when the caller should bail out.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", err.Error(), err,
		)
		return false
	}
	return true
}

// respondServiceError maps service-layer sentinel errors onto HTTP codes.
func respondServiceError(w http.ResponseWriter, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		utils.HandleAppError(w, err)
		return
	}

	switch {
	case errors.Is(err, utils.ErrWeakPassword):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Password is too weak", nil, err)
	case errors.Is(err, utils.ErrInvalidPhone):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPhone, "Phone number is not a valid Kenyan number", nil, err)
	case errors.Is(err, utils.ErrEmailExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "An account with this email already exists", nil, err)
	case errors.Is(err, utils.ErrAlreadyPaid):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Already purchased", nil, err)
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil, err)
	case errors.Is(err, utils.ErrInvalidToken):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", nil, err)
	case errors.Is(err, utils.ErrNotOwner), errors.Is(err, utils.ErrNotParticipant):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "You do not have access to this resource", nil, err)
	case errors.Is(err, utils.ErrNoRowsUpdated), errors.Is(err, pgx.ErrNoRows):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Not found", nil, err)
	case errors.Is(err, utils.ErrRowVersionConflict):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeRowVersionConflict, "The resource has changed, please refresh", nil, err)
	case errors.Is(err, utils.ErrExternalServiceFailure):
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, "Upstream service failed", nil, err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// requireUserID pulls the authenticated user out of the request context.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a UUID path variable, responding 400 on garbage.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name, nil, err)
		return uuid.Nil, false
	}
	return id, true
}
