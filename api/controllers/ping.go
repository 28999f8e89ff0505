package controllers

import (
	"net/http"

	"github.com/toyosu-dev/lunchnavi-backend/api/middleware"
	"github.com/toyosu-dev/lunchnavi-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if login := middleware.LoginIDFromContext(r.Context()); login != "" {
			payload["login_id"] = login
		}
		responses.WriteSuccess(w, payload)
	}
}
