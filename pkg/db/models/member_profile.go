package models

import (
	"time"

	"github.com/google/uuid"
)

// MemberProfile holds the member-editable record tied one-to-one to a User.
type MemberProfile struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;column:user_id;not null;uniqueIndex"`
	FirstName         string     `gorm:"column:first_name;not null"`
	LastName          string     `gorm:"column:last_name;not null"`
	Email             string     `gorm:"type:text;not null"`
	Phone             *string    `gorm:"column:phone"`
	CleanDate         *time.Time `gorm:"column:clean_date;type:date"`
	HomeGroupID       *uuid.UUID `gorm:"type:uuid;column:home_group_id"`
	ListedInDirectory bool       `gorm:"column:listed_in_directory;not null;default:false"`
	WillingToSponsor  bool       `gorm:"column:willing_to_sponsor;not null;default:false"`
	SharePhone        bool       `gorm:"column:share_phone;not null;default:false"`
	ShareEmail        bool       `gorm:"column:share_email;not null;default:false"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
