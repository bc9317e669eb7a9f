package dto

import (
	"time"

	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
}

// AdminResponse is the safe projection of an admin account; it never carries
// the password hash.
type AdminResponse struct {
	ID          uuid.UUID        `json:"id"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Role        models.AdminRole `json:"role"`
	IsActive    bool             `json:"isActive"`
	LastLoginAt *time.Time       `json:"lastLoginAt,omitempty"`
}

func NewAdminResponse(a *models.Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		IsActive:    a.IsActive,
		LastLoginAt: a.LastLoginAt,
	}
}

type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Admin        AdminResponse `json:"admin"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type LogoutResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
