package models

import (
	"time"

	"github.com/google/uuid"
)

// HomeGroup is a named recurring meeting members can belong to.
// Placeholder rows created during import carry "TBD" schedule/address values.
type HomeGroup struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"type:text;not null;index"`
	MeetingTime string    `gorm:"column:meeting_time;not null;default:'TBD'"`
	Address     string    `gorm:"column:address;not null;default:'TBD'"`
	City        string    `gorm:"column:city;not null;default:'TBD'"`
	State       string    `gorm:"column:state;not null;default:'TBD'"`
	Zip         string    `gorm:"column:zip;not null;default:'TBD'"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
