package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemLog persists ERROR-level application logs for the admin panel's
// diagnostics view. Rows older than the retention window are swept daily.
type SystemLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Level     string         `gorm:"size:10;not null" json:"level"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	RequestID string         `gorm:"size:64" json:"requestId"`
	AdminID   *string        `gorm:"size:64" json:"adminId"`
	Action    string         `gorm:"size:100" json:"action"`
	Error     string         `gorm:"type:text" json:"error"`
	LatencyMs int            `json:"latencyMs"`
	Extra     datatypes.JSON `json:"extra"`
}
