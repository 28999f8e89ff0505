package mood

import (
	"context"

	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
)

// ServiceParams groups dependencies for the mood service.
type ServiceParams struct {
	Repo   StoreLookup
	Logger *logger.Logger
}

// StoreLookup resolves a diagnosis code to seeded stores.
type StoreLookup interface {
	FindByDiagnosisCode(ctx context.Context, code string) ([]RecommendedStore, error)
}

// Service exposes the quiz resolution pipeline.
type Service interface {
	Recommend(ctx context.Context, answers Answers) Recommendation
}

type service struct {
	repo StoreLookup
	logg *logger.Logger
}

// NewService builds a mood service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mood store lookup is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{repo: params.Repo, logg: params.Logger}, nil
}

// ResolveCode concatenates the four answers into a diagnosis code.
// A missing or unrecognized answer defaults to '0'.
func ResolveCode(answers Answers) string {
	return normalizeAnswer(answers.Mood1) +
		normalizeAnswer(answers.Mood2) +
		normalizeAnswer(answers.Mood3) +
		normalizeAnswer(answers.Mood4)
}

func normalizeAnswer(answer string) string {
	if answer == "1" {
		return "1"
	}
	return "0"
}

// Recommend resolves the code and looks up matching stores. A lookup
// failure degrades to an empty recommendation and is logged, never
// surfaced to the caller.
func (s *service) Recommend(ctx context.Context, answers Answers) Recommendation {
	code := ResolveCode(answers)

	stores, err := s.repo.FindByDiagnosisCode(ctx, code)
	if err != nil {
		s.logg.Error(s.logg.WithField(ctx, "diagnosis_code", code), "mood store lookup failed", err)
		return Recommendation{Code: code, Stores: []RecommendedStore{}}
	}
	if stores == nil {
		stores = []RecommendedStore{}
	}

	return Recommendation{Code: code, Stores: stores}
}
