package controllers

import (
	"net/http"

	"github.com/toyosu-dev/lunchnavi-backend/api/responses"
	"github.com/toyosu-dev/lunchnavi-backend/api/validators"
	"github.com/toyosu-dev/lunchnavi-backend/internal/search"
	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
)

type searchPayload struct {
	Genre           string `json:"genre" validate:"omitempty,max=50"`
	PriceCeilingYen int    `json:"price_ceiling_yen" validate:"omitempty,min=0"`
	RadiusMeters    int    `json:"radius_meters" validate:"omitempty,min=0,max=50000"`
}

// SearchStores runs the restaurant search pipeline. The outcome is always
// HTTP 200; the envelope status tells the client what happened.
func SearchStores(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "search service unavailable"))
			return
		}

		var payload searchPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		envelope := svc.Search(ctx, search.Criteria{
			Genre:           validators.SanitizeString(payload.Genre, 50),
			PriceCeilingYen: payload.PriceCeilingYen,
			RadiusMeters:    payload.RadiusMeters,
		})

		responses.WriteSuccess(w, envelope)
	}
}
