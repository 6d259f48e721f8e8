package profiles

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

func strPtr(s string) *string { return &s }

func fullProfile() *models.MemberProfile {
	cleanDate := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)
	groupID := uuid.New()
	return &models.MemberProfile{
		FirstName:   "Sam",
		LastName:    "Rivers",
		Email:       "sam@example.com",
		CleanDate:   &cleanDate,
		HomeGroupID: &groupID,
	}
}

func TestCompleteness_Empty(t *testing.T) {
	if got := Completeness(&models.MemberProfile{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Completeness(nil); got != 0 {
		t.Fatalf("expected 0 for nil profile, got %d", got)
	}
}

func TestCompleteness_Full(t *testing.T) {
	if got := Completeness(fullProfile()); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCompleteness_PhoneNotRequired(t *testing.T) {
	p := fullProfile()
	p.Phone = nil
	if got := Completeness(p); got != 100 {
		t.Fatalf("expected 100 with no phone, got %d", got)
	}

	p = fullProfile()
	p.Phone = strPtr("2255551234")
	p.Email = ""
	if got := Completeness(p); got != 80 {
		t.Fatalf("expected 80, phone must not stand in for email, got %d", got)
	}
}

func TestCompleteness_EachFieldCounts(t *testing.T) {
	cases := []struct {
		name  string
		strip func(p *models.MemberProfile)
	}{
		{"first_name", func(p *models.MemberProfile) { p.FirstName = "" }},
		{"last_name", func(p *models.MemberProfile) { p.LastName = "" }},
		{"email", func(p *models.MemberProfile) { p.Email = "" }},
		{"clean_date", func(p *models.MemberProfile) { p.CleanDate = nil }},
		{"home_group", func(p *models.MemberProfile) { p.HomeGroupID = nil }},
	}
	for _, tc := range cases {
		p := fullProfile()
		tc.strip(p)
		if got := Completeness(p); got != 80 {
			t.Fatalf("missing %s: expected 80, got %d", tc.name, got)
		}
	}
}

func TestCompleteness_Partial(t *testing.T) {
	p := &models.MemberProfile{
		FirstName: "Sam",
		LastName:  "Rivers",
	}
	if got := Completeness(p); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}

	cleanDate := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)
	p.CleanDate = &cleanDate
	if got := Completeness(p); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestCompleteness_WhitespaceDoesNotCount(t *testing.T) {
	p := &models.MemberProfile{
		FirstName: "  ",
		LastName:  "Rivers",
		Email:     "   ",
	}
	if got := Completeness(p); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}
