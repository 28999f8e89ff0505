package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/toyosu-dev/lunchnavi-backend/api/middleware"
	"github.com/toyosu-dev/lunchnavi-backend/api/responses"
	"github.com/toyosu-dev/lunchnavi-backend/api/validators"
	"github.com/toyosu-dev/lunchnavi-backend/internal/favorites"
	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
)

type favoriteActionPayload struct {
	Action  string `json:"action"`
	StoreID string `json:"store_id"`
}

// FavoriteAction dispatches check_status, register, and deregister for the
// authenticated user. Outcomes travel in the result status, always HTTP 200.
func FavoriteAction(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		var payload favoriteActionPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		result := svc.Process(ctx, favorites.Action(payload.Action), userID, validators.SanitizeString(payload.StoreID, 255))
		responses.WriteSuccess(w, result)
	}
}

// FavoriteList returns the user's bookmarked stores, newest first.
func FavoriteList(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == uuid.Nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user context"))
			return
		}

		items, err := svc.List(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"favorites": items})
	}
}
