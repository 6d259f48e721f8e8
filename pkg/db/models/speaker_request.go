package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// SpeakerRequest records a public ask for a meeting speaker.
type SpeakerRequest struct {
	ID             uuid.UUID                  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RequesterName  string                     `gorm:"column:requester_name;not null"`
	RequesterEmail string                     `gorm:"column:requester_email;not null"`
	RequesterPhone *string                    `gorm:"column:requester_phone"`
	EventDate      *time.Time                 `gorm:"column:event_date;type:date"`
	Topic          string                     `gorm:"type:text"`
	Status         enums.SpeakerRequestStatus `gorm:"type:text;column:status;not null;default:'new'"`
	CreatedAt      time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}
