package models

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "SUPER_ADMIN"
	RoleAdmin      AdminRole = "ADMIN"
	RoleEditor     AdminRole = "EDITOR"
)

// ValidRole reports whether s names one of the known admin roles.
func ValidRole(s string) bool {
	switch AdminRole(s) {
	case RoleSuperAdmin, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// Admin is an authenticatable backoffice principal. The password column holds
// a bcrypt hash, never plaintext.
type Admin struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Role        AdminRole  `gorm:"size:20;not null;default:'EDITOR'" json:"role"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
