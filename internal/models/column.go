package models

import (
	"time"

	"github.com/google/uuid"
)

type ColumnStatus string

const (
	ColumnDraft     ColumnStatus = "DRAFT"
	ColumnPublished ColumnStatus = "PUBLISHED"
	ColumnPrivate   ColumnStatus = "PRIVATE"
)

// ValidColumnStatus reports whether s is a known column status.
func ValidColumnStatus(s string) bool {
	switch ColumnStatus(s) {
	case ColumnDraft, ColumnPublished, ColumnPrivate:
		return true
	}
	return false
}

// Column is a long-form article. PublishedAt is set the first time the column
// transitions to PUBLISHED.
type Column struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Slug         string       `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content      string       `gorm:"type:text;not null" json:"content"`
	Excerpt      *string      `gorm:"type:text" json:"excerpt"`
	ThumbnailURL *string      `gorm:"size:500" json:"thumbnailUrl"`
	Status       ColumnStatus `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	AuthorID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"authorId"`
	CategoryID   *uuid.UUID   `gorm:"type:uuid;index" json:"categoryId"`
	ViewCount    int          `gorm:"not null;default:0" json:"viewCount"`
	PublishedAt  *time.Time   `gorm:"index" json:"publishedAt"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Author       Admin        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Category     *Category    `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}
