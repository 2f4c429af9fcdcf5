package dtos

import (
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
)

// UserResponse is the public projection of a user account.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Role        string     `json:"role"`
	IsStaff     bool       `json:"is_staff"`
	IsActive    bool       `json:"is_active"`
	IsVerified  bool       `json:"is_verified"`
	VerifiedAt  *time.Time `json:"verification_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		IsStaff:     u.IsStaff,
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
		VerifiedAt:  u.VerificationDate,
		CreatedAt:   u.CreatedAt,
	}
}

func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty"`
}
