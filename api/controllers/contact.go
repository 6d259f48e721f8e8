package controllers

import (
	"net/http"

	"github.com/red-stick-digital/brga-backend/api/responses"
	"github.com/red-stick-digital/brga-backend/api/validators"
	"github.com/red-stick-digital/brga-backend/internal/contact"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

// SubmitContactMessage forwards a public contact form message to the group inbox.
func SubmitContactMessage(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var body contact.MessageRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SendMessage(r.Context(), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "sent"})
	}
}

// SubmitSpeakerRequest records a public speaker request and notifies the inbox.
func SubmitSpeakerRequest(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var body contact.SpeakerRequestInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.SubmitSpeakerRequest(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
