package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

// ProfileDTO is the transport shape for a member's own profile.
type ProfileDTO struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Phone             *string    `json:"phone,omitempty"`
	CleanDate         *string    `json:"clean_date,omitempty"`
	HomeGroupID       *uuid.UUID `json:"home_group_id,omitempty"`
	ListedInDirectory bool       `json:"listed_in_directory"`
	WillingToSponsor  bool       `json:"willing_to_sponsor"`
	SharePhone        bool       `json:"share_phone"`
	ShareEmail        bool       `json:"share_email"`
	Completeness      int        `json:"completeness"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateProfileDTO holds the data required to persist a new profile.
type CreateProfileDTO struct {
	UserID            uuid.UUID
	FirstName         string
	LastName          string
	Email             string
	Phone             *string
	CleanDate         *time.Time
	HomeGroupID       *uuid.UUID
	ListedInDirectory bool
	WillingToSponsor  bool
	SharePhone        bool
	ShareEmail        bool
}

// UpdateProfileDTO carries an optional-field patch. Nil fields are untouched.
type UpdateProfileDTO struct {
	FirstName         *string
	LastName          *string
	Phone             *string
	CleanDate         *time.Time
	HomeGroupID       *uuid.UUID
	ListedInDirectory *bool
	WillingToSponsor  *bool
	SharePhone        *bool
	ShareEmail        *bool
}

func FromModel(p *models.MemberProfile) *ProfileDTO {
	if p == nil {
		return nil
	}

	var cleanDate *string
	if p.CleanDate != nil {
		s := p.CleanDate.Format("2006-01-02")
		cleanDate = &s
	}

	return &ProfileDTO{
		ID:                p.ID,
		UserID:            p.UserID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Email:             p.Email,
		Phone:             p.Phone,
		CleanDate:         cleanDate,
		HomeGroupID:       p.HomeGroupID,
		ListedInDirectory: p.ListedInDirectory,
		WillingToSponsor:  p.WillingToSponsor,
		SharePhone:        p.SharePhone,
		ShareEmail:        p.ShareEmail,
		Completeness:      Completeness(p),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (c CreateProfileDTO) ToModel() *models.MemberProfile {
	return &models.MemberProfile{
		UserID:            c.UserID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		CleanDate:         c.CleanDate,
		HomeGroupID:       c.HomeGroupID,
		ListedInDirectory: c.ListedInDirectory,
		WillingToSponsor:  c.WillingToSponsor,
		SharePhone:        c.SharePhone,
		ShareEmail:        c.ShareEmail,
	}
}

// ToUpdates converts the patch into a GORM updates map. Only non-nil
// fields are included so partial updates never clobber stored values.
func (u UpdateProfileDTO) ToUpdates() map[string]any {
	updates := map[string]any{}
	if u.FirstName != nil {
		updates["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		updates["last_name"] = *u.LastName
	}
	if u.Phone != nil {
		updates["phone"] = *u.Phone
	}
	if u.CleanDate != nil {
		updates["clean_date"] = *u.CleanDate
	}
	if u.HomeGroupID != nil {
		updates["home_group_id"] = *u.HomeGroupID
	}
	if u.ListedInDirectory != nil {
		updates["listed_in_directory"] = *u.ListedInDirectory
	}
	if u.WillingToSponsor != nil {
		updates["willing_to_sponsor"] = *u.WillingToSponsor
	}
	if u.SharePhone != nil {
		updates["share_phone"] = *u.SharePhone
	}
	if u.ShareEmail != nil {
		updates["share_email"] = *u.ShareEmail
	}
	return updates
}
