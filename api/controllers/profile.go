package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/api/middleware"
	"github.com/red-stick-digital/brga-backend/api/responses"
	"github.com/red-stick-digital/brga-backend/api/validators"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

type profileStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.MemberProfile, error)
	Update(ctx context.Context, userID uuid.UUID, patch profiles.UpdateProfileDTO) (*models.MemberProfile, error)
}

type updateProfileRequest struct {
	FirstName         *string    `json:"first_name,omitempty"`
	LastName          *string    `json:"last_name,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	CleanDate         *string    `json:"clean_date,omitempty"`
	HomeGroupID       *uuid.UUID `json:"home_group_id,omitempty"`
	ListedInDirectory *bool      `json:"listed_in_directory,omitempty"`
	WillingToSponsor  *bool      `json:"willing_to_sponsor,omitempty"`
	SharePhone        *bool      `json:"share_phone,omitempty"`
	ShareEmail        *bool      `json:"share_email,omitempty"`
}

func (r updateProfileRequest) toPatch() (profiles.UpdateProfileDTO, error) {
	patch := profiles.UpdateProfileDTO{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		HomeGroupID:       r.HomeGroupID,
		ListedInDirectory: r.ListedInDirectory,
		WillingToSponsor:  r.WillingToSponsor,
		SharePhone:        r.SharePhone,
		ShareEmail:        r.ShareEmail,
	}
	if r.CleanDate != nil {
		parsed, err := time.Parse("2006-01-02", *r.CleanDate)
		if err != nil {
			return patch, pkgerrors.New(pkgerrors.CodeValidation, "clean_date must be YYYY-MM-DD")
		}
		patch.CleanDate = &parsed
	}
	return patch, nil
}

// GetOwnProfile returns the caller's profile with its completeness score.
func GetOwnProfile(store profileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile repository unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		profile, err := store.FindByUserID(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "profile not found"))
			return
		}

		responses.WriteSuccess(w, profiles.FromModel(profile))
	}
}

// UpdateOwnProfile applies a partial patch to the caller's profile.
func UpdateOwnProfile(store profileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile repository unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body updateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := body.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := store.Update(r.Context(), userID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profiles.FromModel(updated))
	}
}
