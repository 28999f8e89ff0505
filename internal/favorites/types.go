// Package favorites manages the per-user store bookmark list.
package favorites

import "time"

// Action is the closed set of favorite operations.
type Action string

const (
	ActionCheckStatus Action = "check_status"
	ActionRegister    Action = "register"
	ActionDeregister  Action = "deregister"
)

// ResultStatus discriminates the outcome of a favorite operation.
type ResultStatus string

const (
	StatusSuccess         ResultStatus = "SUCCESS"
	StatusMissingData     ResultStatus = "MISSING_DATA"
	StatusProviderFailure ResultStatus = "PROVIDER_FAILURE"
	StatusStoreFailure    ResultStatus = "STORE_FAILURE"
	StatusInvalidAction   ResultStatus = "INVALID_ACTION"
)

// Result is the uniform envelope returned for every favorite operation.
// IsFavorite is only meaningful for check_status.
type Result struct {
	Status     ResultStatus `json:"status"`
	IsFavorite bool         `json:"is_favorite"`
	Message    string       `json:"message"`
}

// FavoriteDTO is one bookmarked store in a user's list.
type FavoriteDTO struct {
	StoreID   string    `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}
