package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/api/responses"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

type speakerRequestStore interface {
	ListByStatus(ctx context.Context, status enums.SpeakerRequestStatus) ([]models.SpeakerRequest, error)
	MarkHandled(ctx context.Context, id uuid.UUID) (bool, error)
}

// ListSpeakerRequests returns intake rows filtered by status, new by default.
func ListSpeakerRequests(store speakerRequestStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "speaker request repository unavailable"))
			return
		}

		status := enums.SpeakerRequestStatusNew
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			parsed, err := enums.ParseSpeakerRequestStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			status = parsed
		}

		rows, err := store.ListByStatus(r.Context(), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// HandleSpeakerRequest marks an intake row as handled.
func HandleSpeakerRequest(store speakerRequestStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "speaker request repository unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request id"))
			return
		}

		found, err := store.MarkHandled(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "speaker request not found"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "handled"})
	}
}
