package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// UserRole is the access-control row kept separate from the profile.
type UserRole struct {
	ID             uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID            `gorm:"type:uuid;column:user_id;not null;uniqueIndex"`
	Role           enums.MemberRole     `gorm:"type:text;column:role;not null"`
	ApprovalStatus enums.ApprovalStatus `gorm:"type:text;column:approval_status;not null"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
