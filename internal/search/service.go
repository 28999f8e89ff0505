package search

import (
	"context"
	"time"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/config"
	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/metrics"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/places"
)

const (
	invalidInputMessage  = "ジャンル、距離、金額のいずれか一つ以上を選択してください。"
	providerErrorMessage = "店舗検索中にエラーが発生しました。しばらくしてから再度お試しください。"

	textSearchOperation = "text_search"
)

// Provider is the outbound text-search surface consumed by the orchestrator.
type Provider interface {
	TextSearch(ctx context.Context, req places.TextSearchRequest) ([]places.SearchHit, error)
}

// ServiceParams groups dependencies for the search service.
type ServiceParams struct {
	Provider Provider
	Config   config.SearchConfig
	Logger   *logger.Logger
	Metrics  *metrics.PlacesMetrics
}

// Service exposes the search pipeline.
type Service interface {
	Search(ctx context.Context, criteria Criteria) Envelope
}

type service struct {
	provider Provider
	cfg      config.SearchConfig
	logg     *logger.Logger
	met      *metrics.PlacesMetrics
}

// NewService builds a search service with the required dependencies.
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

// Search validates the criteria, queries the provider, and classifies the
// outcome. Provider failures degrade to an ERROR envelope, never an error
// return.
func (s *service) Search(ctx context.Context, criteria Criteria) Envelope {
	if !criteria.HasFilter() {
		return Envelope{
			Status:     StatusInvalidInput,
			Message:    invalidInputMessage,
			Candidates: []Candidate{},
		}
	}

	radius := criteria.RadiusMeters
	if radius == 0 {
		radius = s.cfg.DefaultRadiusMeters
	}

	query := BuildQuery(criteria)

	start := time.Now()
	hits, err := s.provider.TextSearch(ctx, places.TextSearchRequest{
		Query:        query,
		OriginLat:    s.cfg.OriginLat,
		OriginLng:    s.cfg.OriginLng,
		RadiusMeters: radius,
		Language:     s.cfg.Language,
	})
	s.met.ObserveDuration(textSearchOperation, time.Since(start))

	providerSucceeded := err == nil
	if err != nil {
		s.met.IncFailure(textSearchOperation)
		s.logg.Error(s.logg.WithField(ctx, "query", query), "places text search failed", err)
	} else {
		s.met.IncSuccess(textSearchOperation)
	}

	candidates, isSuccess := Format(hits, providerSucceeded, s.cfg.OriginLat, s.cfg.OriginLng, radius)

	status, message := Classify(candidates, isSuccess, providerErrorMessage)
	if candidates == nil {
		candidates = []Candidate{}
	}

	return Envelope{
		Status:     status,
		Message:    message,
		Candidates: candidates,
	}
}
