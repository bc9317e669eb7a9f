package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is one node of the content taxonomy. ParentID allows a shallow
// hierarchy; deleting a parent orphans children (SET NULL) rather than
// cascading.
type Category struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug        string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description *string    `gorm:"type:text" json:"description"`
	ParentID    *uuid.UUID `gorm:"type:uuid" json:"parentId"`
	Order       int        `gorm:"not null;default:0" json:"order"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Parent      *Category  `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
}
