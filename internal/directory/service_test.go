package directory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

type stubProfileLister struct {
	profiles []models.MemberProfile
}

func (s stubProfileLister) ListDirectory(context.Context) ([]models.MemberProfile, error) {
	return s.profiles, nil
}

type stubGroupFinder struct {
	groups map[uuid.UUID]*models.HomeGroup
	calls  int
}

func (s *stubGroupFinder) FindByID(_ context.Context, id uuid.UUID) (*models.HomeGroup, error) {
	s.calls++
	if group, ok := s.groups[id]; ok {
		return group, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func strPtr(s string) *string { return &s }

func TestDirectoryListRedactsUnsharedContactInfo(t *testing.T) {
	groupID := uuid.New()
	cleanDate := time.Date(2015, 3, 14, 0, 0, 0, 0, time.UTC)
	lister := stubProfileLister{profiles: []models.MemberProfile{
		{
			UserID:      uuid.New(),
			FirstName:   "Pat",
			LastName:    "Sharer",
			Email:       "pat@example.com",
			Phone:       strPtr("2255550001"),
			SharePhone:  true,
			ShareEmail:  true,
			CleanDate:   &cleanDate,
			HomeGroupID: &groupID,
		},
		{
			UserID:    uuid.New(),
			FirstName: "Quinn",
			LastName:  "Private",
			Email:     "quinn@example.com",
			Phone:     strPtr("2255550002"),
		},
	}}
	finder := &stubGroupFinder{groups: map[uuid.UUID]*models.HomeGroup{
		groupID: {ID: groupID, Name: "Primary Purpose"},
	}}

	svc, err := NewService(ServiceParams{ProfileRepo: lister, GroupRepo: finder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	entries, err := svc.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	shared := entries[0]
	if shared.Phone == nil || *shared.Phone != "2255550001" {
		t.Fatalf("expected shared phone, got %v", shared.Phone)
	}
	if shared.Email == nil || *shared.Email != "pat@example.com" {
		t.Fatalf("expected shared email, got %v", shared.Email)
	}
	if shared.HomeGroupName == nil || *shared.HomeGroupName != "Primary Purpose" {
		t.Fatalf("expected group name, got %v", shared.HomeGroupName)
	}
	if shared.CleanDate == nil || *shared.CleanDate != "2015-03-14" {
		t.Fatalf("expected clean date, got %v", shared.CleanDate)
	}

	private := entries[1]
	if private.Phone != nil {
		t.Fatalf("expected redacted phone, got %v", *private.Phone)
	}
	if private.Email != nil {
		t.Fatalf("expected redacted email, got %v", *private.Email)
	}
}

func TestDirectoryListSponsorsOnly(t *testing.T) {
	lister := stubProfileLister{profiles: []models.MemberProfile{
		{UserID: uuid.New(), FirstName: "A", LastName: "Sponsor", WillingToSponsor: true},
		{UserID: uuid.New(), FirstName: "B", LastName: "NotSponsor"},
	}}
	finder := &stubGroupFinder{}

	svc, err := NewService(ServiceParams{ProfileRepo: lister, GroupRepo: finder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	entries, err := svc.List(context.Background(), ListParams{SponsorsOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].LastName != "Sponsor" {
		t.Fatalf("expected only sponsor entries, got %v", entries)
	}
}

func TestDirectoryListCachesGroupLookups(t *testing.T) {
	groupID := uuid.New()
	lister := stubProfileLister{profiles: []models.MemberProfile{
		{UserID: uuid.New(), FirstName: "A", LastName: "One", HomeGroupID: &groupID},
		{UserID: uuid.New(), FirstName: "B", LastName: "Two", HomeGroupID: &groupID},
	}}
	finder := &stubGroupFinder{groups: map[uuid.UUID]*models.HomeGroup{
		groupID: {ID: groupID, Name: "Serenity"},
	}}

	svc, err := NewService(ServiceParams{ProfileRepo: lister, GroupRepo: finder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.List(context.Background(), ListParams{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if finder.calls != 1 {
		t.Fatalf("expected single group lookup, got %d", finder.calls)
	}
}
