package controllers

import (
	"net/http"

	"github.com/toyosu-dev/lunchnavi-backend/api/responses"
	"github.com/toyosu-dev/lunchnavi-backend/api/validators"
	"github.com/toyosu-dev/lunchnavi-backend/internal/mood"
	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
)

// MoodRecommend turns the four quiz answers into a store recommendation.
// Missing or unrecognized answers count as "no", so any body shape maps
// to a valid diagnosis code.
func MoodRecommend(svc mood.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "mood service unavailable"))
			return
		}

		var answers mood.Answers
		if err := validators.DecodeJSONBody(r, &answers); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Recommend(ctx, answers))
	}
}
