package middleware

import (
	"net/http"

	"github.com/red-stick-digital/brga-backend/api/responses"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

func RequireRole(logg *logger.Logger, allowed ...string) func(http.Handler) http.Handler {
	permitted := map[string]struct{}{}
	for _, role := range allowed {
		permitted[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := permitted[RoleFromContext(r.Context())]; !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireApproved blocks members whose account is still awaiting admin review.
func RequireApproved(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			status := ApprovalStatusFromContext(r.Context())
			if status != "approved" && status != "superadmin" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "account pending approval"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
