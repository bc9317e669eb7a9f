package models

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentText  ContentType = "TEXT"
	ContentHTML  ContentType = "HTML"
	ContentJSON  ContentType = "JSON"
	ContentImage ContentType = "IMAGE"
)

func ValidContentType(s string) bool {
	switch ContentType(s) {
	case ContentText, ContentHTML, ContentJSON, ContentImage:
		return true
	}
	return false
}

// PageContent is a keyed static content block rendered by the public site
// (hero copy, footer text, landing sections). Keys are stable identifiers
// chosen by the frontend.
type PageContent struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string      `gorm:"size:255;not null;uniqueIndex" json:"key"`
	Title     *string     `gorm:"size:255" json:"title"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Type      ContentType `gorm:"size:10;not null;default:'TEXT'" json:"type"`
	IsActive  bool        `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
