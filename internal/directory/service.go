package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
)

// Entry is the redacted directory row shown to approved members.
// Phone and email appear only when the member opted into sharing them.
type Entry struct {
	UserID           uuid.UUID `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            *string   `json:"phone,omitempty"`
	Email            *string   `json:"email,omitempty"`
	HomeGroupName    *string   `json:"home_group_name,omitempty"`
	CleanDate        *string   `json:"clean_date,omitempty"`
	WillingToSponsor bool      `json:"willing_to_sponsor"`
}

// Service lists directory entries for approved members.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Entry, error)
}

// ListParams filters the directory listing.
type ListParams struct {
	SponsorsOnly bool
}

type profileLister interface {
	ListDirectory(ctx context.Context) ([]models.MemberProfile, error)
}

type groupFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.HomeGroup, error)
}

type service struct {
	profiles profileLister
	groups   groupFinder
}

// ServiceParams bundles the directory service dependencies.
type ServiceParams struct {
	ProfileRepo profileLister
	GroupRepo   groupFinder
}

// NewService wires the directory service.
func NewService(params ServiceParams) (Service, error) {
	if params.ProfileRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "profile repository required")
	}
	if params.GroupRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "group repository required")
	}
	return &service{
		profiles: params.ProfileRepo,
		groups:   params.GroupRepo,
	}, nil
}

func (s *service) List(ctx context.Context, params ListParams) ([]Entry, error) {
	profiles, err := s.profiles.ListDirectory(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list directory profiles")
	}

	groupNames := map[uuid.UUID]string{}
	entries := make([]Entry, 0, len(profiles))
	for _, p := range profiles {
		if params.SponsorsOnly && !p.WillingToSponsor {
			continue
		}
		entries = append(entries, s.buildEntry(ctx, p, groupNames))
	}
	return entries, nil
}

func (s *service) buildEntry(ctx context.Context, p models.MemberProfile, groupNames map[uuid.UUID]string) Entry {
	entry := Entry{
		UserID:           p.UserID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		WillingToSponsor: p.WillingToSponsor,
	}
	if p.SharePhone && p.Phone != nil {
		entry.Phone = p.Phone
	}
	if p.ShareEmail {
		email := p.Email
		entry.Email = &email
	}
	if p.CleanDate != nil {
		s := p.CleanDate.Format(time.DateOnly)
		entry.CleanDate = &s
	}
	if p.HomeGroupID != nil {
		name, ok := groupNames[*p.HomeGroupID]
		if !ok {
			group, err := s.groups.FindByID(ctx, *p.HomeGroupID)
			if err != nil {
				// a dangling group reference hides the name, not the entry
				return entry
			}
			name = group.Name
			groupNames[*p.HomeGroupID] = name
		}
		entry.HomeGroupName = &name
	}
	return entry
}
