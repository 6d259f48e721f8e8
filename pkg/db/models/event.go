package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// Event is a calendar entry (meeting, service workday, social).
type Event struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string          `gorm:"type:text;not null"`
	Description string          `gorm:"type:text"`
	Kind        enums.EventKind `gorm:"type:text;column:kind;not null"`
	Location    string          `gorm:"type:text"`
	StartsAt    time.Time       `gorm:"column:starts_at;not null;index"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
