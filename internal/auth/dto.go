// Package auth implements login, registration, and session refresh.
package auth

import "github.com/toyosu-dev/lunchnavi-backend/internal/users"

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required,len=4,numeric"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token pair and user produced by a successful login.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}

// RegisterRequest carries the password chosen by a new user. The login ID
// is generated server-side.
type RegisterRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse returns the generated login ID alongside the token pair.
type RegisterResponse struct {
	LoginID      string         `json:"login_id"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}

// RefreshRequest carries the expiring access token and its refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
