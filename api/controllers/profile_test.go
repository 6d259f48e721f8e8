package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/api/middleware"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

type stubProfileStore struct {
	profile *models.MemberProfile
	patch   *profiles.UpdateProfileDTO
	err     error
}

func (s *stubProfileStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.MemberProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfileStore) Update(ctx context.Context, userID uuid.UUID, patch profiles.UpdateProfileDTO) (*models.MemberProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.patch = &patch
	return s.profile, nil
}

func TestGetOwnProfileIncludesCompleteness(t *testing.T) {
	userID := uuid.New()
	phone := "2255551212"
	clean := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
	groupID := uuid.New()
	store := &stubProfileStore{profile: &models.MemberProfile{
		ID:          uuid.New(),
		UserID:      userID,
		FirstName:   "Tony",
		LastName:    "James",
		Email:       "tony@example.com",
		Phone:       &phone,
		CleanDate:   &clean,
		HomeGroupID: &groupID,
	}}

	handler := GetOwnProfile(store, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data profiles.ProfileDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Completeness != 100 {
		t.Fatalf("expected full completeness, got %d", envelope.Data.Completeness)
	}
	if envelope.Data.CleanDate == nil || *envelope.Data.CleanDate != "2020-03-15" {
		t.Fatalf("expected formatted clean date, got %v", envelope.Data.CleanDate)
	}
}

func TestGetOwnProfileRequiresIdentity(t *testing.T) {
	handler := GetOwnProfile(&stubProfileStore{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/profile", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestUpdateOwnProfileParsesCleanDate(t *testing.T) {
	userID := uuid.New()
	store := &stubProfileStore{profile: &models.MemberProfile{UserID: userID}}

	body := bytes.NewBufferString(`{"clean_date":"2019-07-04","share_phone":true}`)
	handler := UpdateOwnProfile(store, nil)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/me/profile", body)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if store.patch == nil {
		t.Fatal("expected patch to reach the store")
	}
	if store.patch.CleanDate == nil || !store.patch.CleanDate.Equal(time.Date(2019, 7, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected clean date patch: %v", store.patch.CleanDate)
	}
	if store.patch.SharePhone == nil || !*store.patch.SharePhone {
		t.Fatal("expected share_phone patch")
	}
	if store.patch.FirstName != nil {
		t.Fatal("expected untouched fields to stay nil")
	}
}

func TestUpdateOwnProfileRejectsBadCleanDate(t *testing.T) {
	userID := uuid.New()
	store := &stubProfileStore{profile: &models.MemberProfile{UserID: userID}}

	body := bytes.NewBufferString(`{"clean_date":"March 2019"}`)
	handler := UpdateOwnProfile(store, nil)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/me/profile", body)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if store.patch != nil {
		t.Fatal("expected no store call on invalid date")
	}
}
