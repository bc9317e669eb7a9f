package models

import (
	"time"

	"github.com/google/uuid"
)

// Media is an uploaded file record. FileName is the uuid-based name on disk;
// OriginalName is what the uploader called it. Width and Height are probed at
// upload time for image assets.
type Media struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OriginalName string    `gorm:"size:255;not null" json:"originalName"`
	FileName     string    `gorm:"size:255;not null" json:"fileName"`
	MimeType     string    `gorm:"size:100;not null" json:"mimeType"`
	Size         int64     `gorm:"not null" json:"size"`
	URL          string    `gorm:"size:500;not null" json:"url"`
	Width        int       `gorm:"not null;default:0" json:"width"`
	Height       int       `gorm:"not null;default:0" json:"height"`
	UploadedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Uploader     Admin     `gorm:"foreignKey:UploadedBy;constraint:OnDelete:CASCADE" json:"-"`
}

func (Media) TableName() string {
	return "media"
}
