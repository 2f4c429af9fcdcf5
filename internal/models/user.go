package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleType separates house hunters (seekers) from landlords (owners).
type RoleType string

const (
	RoleHunter   RoleType = "hunter"
	RoleLandlord RoleType = "landlord"
)

type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	PhoneNumber      *string    `json:"phone_number,omitempty"`
	Role             RoleType   `json:"role"`
	IsStaff          bool       `json:"is_staff"`
	IsActive         bool       `json:"is_active"`
	IsVerified       bool       `json:"is_verified"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
