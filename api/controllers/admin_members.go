package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/api/responses"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

type approvalStore interface {
	UpdateApprovalStatus(ctx context.Context, userID uuid.UUID, status enums.ApprovalStatus) error
}

// ApproveMember flips a pending member's approval status, unlocking the portal.
func ApproveMember(store approvalStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "role repository unavailable"))
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid member id"))
			return
		}

		if err := store.UpdateApprovalStatus(r.Context(), userID, enums.ApprovalStatusApproved); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithField(r.Context(), "member_id", userID.String())
			logg.Info(ctx, "member.approved")
		}

		responses.WriteSuccess(w, map[string]string{"status": "approved"})
	}
}
