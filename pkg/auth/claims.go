// Package auth issues and validates the JWT access tokens carried by
// authenticated requests.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID  uuid.UUID
	LoginID string
	JTI     string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID  uuid.UUID `json:"user_id"`
	LoginID string    `json:"login_id"`
	jwt.RegisteredClaims
}
