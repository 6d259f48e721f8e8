package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/red-stick-digital/brga-backend/api/responses"
	"github.com/red-stick-digital/brga-backend/internal/directory"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

// ListDirectory returns the member directory visible to approved members.
func ListDirectory(svc directory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		params := directory.ListParams{}
		if sponsors := strings.TrimSpace(r.URL.Query().Get("sponsors")); sponsors != "" {
			value, err := strconv.ParseBool(sponsors)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sponsors value"))
				return
			}
			params.SponsorsOnly = value
		}

		entries, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, entries)
	}
}
