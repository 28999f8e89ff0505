// Package stores resolves store identifiers and fetches detail pages
// from the places provider.
package stores

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/config"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/geo"
	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/metrics"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/places"
)

const detailsOperation = "details"

// DetailStatus is the closed set of detail-page outcomes.
type DetailStatus string

const (
	// DetailStatusOK means the provider answered with a complete payload.
	DetailStatusOK DetailStatus = "OK"
	// DetailStatusNG means the provider answered but the payload lacks content.
	DetailStatusNG DetailStatus = "NG"
	// DetailStatusError means the provider call itself failed.
	DetailStatusError DetailStatus = "ERROR"
)

// Detail is the store detail envelope returned to the caller.
type Detail struct {
	Status           DetailStatus    `json:"status"`
	StoreID          string          `json:"store_id"`
	Name             string          `json:"name"`
	FormattedAddress string          `json:"formatted_address"`
	Website          string          `json:"website"`
	WeekdayHours     []string        `json:"weekday_hours"`
	Reviews          []places.Review `json:"reviews"`
	PhotoReferences  []string        `json:"photo_references"`
	DistanceMeters   int             `json:"distance_meters"`
}

// Detailer is the provider surface consumed for store details.
type Detailer interface {
	Details(ctx context.Context, placeID, language string) (*places.PlaceDetails, error)
}

// ServiceParams groups dependencies for the stores service.
type ServiceParams struct {
	Provider Detailer
	Config   config.SearchConfig
	Logger   *logger.Logger
	Metrics  *metrics.PlacesMetrics
}

// Service exposes store resolution and detail lookup.
type Service interface {
	ResolveStoreID(ctx context.Context, identifier string) (string, error)
	Detail(ctx context.Context, storeID string) Detail
}

type service struct {
	provider Detailer
	cfg      config.SearchConfig
	logg     *logger.Logger
	met      *metrics.PlacesMetrics
}

// NewService builds a stores service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Provider == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "places provider is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		provider: params.Provider,
		cfg:      params.Config,
		logg:     params.Logger,
		met:      params.Metrics,
	}, nil
}

// ResolveStoreID returns the canonical store ID for an identifier. Place
// IDs are already canonical, so a non-empty identifier resolves to itself.
func (s *service) ResolveStoreID(ctx context.Context, identifier string) (string, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
	}
	return trimmed, nil
}

// Detail fetches the detail payload for a store. Provider failures and
// incomplete payloads are folded into the envelope status.
func (s *service) Detail(ctx context.Context, storeID string) Detail {
	trimmed := strings.TrimSpace(storeID)
	if trimmed == "" {
		return Detail{Status: DetailStatusNG}
	}

	start := time.Now()
	payload, err := s.provider.Details(ctx, trimmed, s.cfg.Language)
	s.met.ObserveDuration(detailsOperation, time.Since(start))
	if err != nil {
		s.met.IncFailure(detailsOperation)
		s.logg.Error(s.logg.WithPlaceID(ctx, trimmed), "place details fetch failed", err)
		return Detail{Status: DetailStatusError, StoreID: trimmed}
	}
	s.met.IncSuccess(detailsOperation)

	detail := Detail{
		StoreID:          trimmed,
		Name:             payload.Name,
		FormattedAddress: payload.FormattedAddress,
		Website:          payload.Website,
		WeekdayHours:     payload.WeekdayHours,
		Reviews:          payload.Reviews,
		PhotoReferences:  payload.PhotoReferences,
		DistanceMeters:   distanceFromOrigin(s.cfg, payload),
	}

	if payload.Name == "" {
		detail.Status = DetailStatusNG
		return detail
	}

	detail.Status = DetailStatusOK
	return detail
}

func distanceFromOrigin(cfg config.SearchConfig, payload *places.PlaceDetails) int {
	if payload.Location.Latitude == 0 && payload.Location.Longitude == 0 {
		return 0
	}
	meters := geo.Distance(cfg.OriginLat, cfg.OriginLng, payload.Location.Latitude, payload.Location.Longitude)
	return int(math.Round(meters))
}
