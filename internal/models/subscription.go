package models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "PENDING"
	SubscriptionApproved SubscriptionStatus = "APPROVED"
	SubscriptionRejected SubscriptionStatus = "REJECTED"
)

func ValidSubscriptionStatus(s string) bool {
	switch SubscriptionStatus(s) {
	case SubscriptionPending, SubscriptionApproved, SubscriptionRejected:
		return true
	}
	return false
}

// Subscription is an inbound consultation request from the public website.
// Approved rows count as subscribers.
type Subscription struct {
	ID        uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Email     string             `gorm:"size:255;not null;index" json:"email"`
	Phone     *string            `gorm:"size:50" json:"phone"`
	Message   *string            `gorm:"type:text" json:"message"`
	Status    SubscriptionStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
