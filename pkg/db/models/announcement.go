package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a portal post shown to authenticated members.
type Announcement struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string     `gorm:"type:text;not null"`
	Body        string     `gorm:"type:text;not null"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;column:author_id;not null"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
