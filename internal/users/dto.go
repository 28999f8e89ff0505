// Package users exposes user persistence and projections.
package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/db/models"
)

// UserDTO is the public projection of a user.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	LoginID     string     `json:"login_id"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateUserDTO carries the fields needed to persist a new user.
type CreateUserDTO struct {
	LoginID      string
	PasswordHash string
}

// ToModel maps the creation DTO onto the persistence model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		LoginID:      d.LoginID,
		PasswordHash: d.PasswordHash,
	}
}

// FromModel projects a persisted user into its public DTO.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:          user.ID,
		LoginID:     user.LoginID,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
