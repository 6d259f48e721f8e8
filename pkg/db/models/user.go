package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical identity entity.
type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email              string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash       string     `gorm:"column:password_hash;not null"`
	EmailVerified      bool       `gorm:"column:email_verified;not null;default:false"`
	MustChangePassword bool       `gorm:"column:must_change_password;not null;default:false"`
	Migrated           bool       `gorm:"column:migrated;not null;default:false"`
	MigratedAt         *time.Time `gorm:"column:migrated_at"`
	LastLoginAt        *time.Time `gorm:"column:last_login_at"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
