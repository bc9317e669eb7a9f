package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one row of the refresh-token ledger. A usable refresh token
// has exactly one row here; absence means revoked or never issued, regardless
// of whether the JWT signature still verifies. Tokens are JWT strings, so 500
// chars gives comfortable headroom.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index" json:"adminId"`
	Token     string    `gorm:"size:500;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Admin     Admin     `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefreshToken) TableName() string {
	return "admin_refresh_tokens"
}
