package favorites

import (
	"context"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
)

const (
	missingDataMessage     = "必要な情報が不足しています。"
	providerFailureMessage = "店舗情報の取得に失敗しました。"
	storeFailureMessage    = "お気に入りの更新に失敗しました。しばらくしてから再度お試しください。"
	invalidActionMessage   = "不正な操作が指定されました。"
)

// StoreResolver maps a raw store identifier to its canonical store ID.
type StoreResolver interface {
	ResolveStoreID(ctx context.Context, identifier string) (string, error)
}

// FavoriteStore is the persistence surface consumed by the service.
type FavoriteStore interface {
	IsFavorite(ctx context.Context, userID uuid.UUID, storeID string) (bool, error)
	Add(ctx context.Context, userID uuid.UUID, storeID string) error
	Remove(ctx context.Context, userID uuid.UUID, storeID string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]FavoriteDTO, error)
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	Repo     FavoriteStore
	Resolver StoreResolver
	Logger   *logger.Logger
}

// Service exposes the favorite operations.
type Service interface {
	Process(ctx context.Context, action Action, userID uuid.UUID, storeIdentifier string) Result
	List(ctx context.Context, userID uuid.UUID) ([]FavoriteDTO, error)
}

type service struct {
	repo     FavoriteStore
	resolver StoreResolver
	logg     *logger.Logger
}

// NewService builds a favorites service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites repo is required")
	}
	if params.Resolver == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store resolver is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		repo:     params.Repo,
		resolver: params.Resolver,
		logg:     params.Logger,
	}, nil
}

// Process resolves the store identifier and dispatches the requested
// action. Every outcome is reported through the Result envelope, never
// through an error return.
func (s *service) Process(ctx context.Context, action Action, userID uuid.UUID, storeIdentifier string) Result {
	if action == "" || userID == uuid.Nil || strings.TrimSpace(storeIdentifier) == "" {
		return Result{Status: StatusMissingData, Message: missingDataMessage}
	}

	storeID, err := s.resolver.ResolveStoreID(ctx, strings.TrimSpace(storeIdentifier))
	if err != nil {
		s.logg.Error(s.logg.WithUserID(ctx, userID.String()), "store resolution failed", err)
		return Result{Status: StatusProviderFailure, Message: providerFailureMessage}
	}

	switch action {
	case ActionCheckStatus:
		isFavorite, err := s.repo.IsFavorite(ctx, userID, storeID)
		if err != nil {
			s.logg.Error(ctx, "favorite check failed", err)
			return Result{Status: StatusStoreFailure, Message: storeFailureMessage}
		}
		return Result{Status: StatusSuccess, IsFavorite: isFavorite}

	case ActionRegister:
		// Duplicate registration is a success, not a conflict.
		if err := s.repo.Add(ctx, userID, storeID); err != nil {
			s.logg.Error(ctx, "favorite insert failed", err)
			return Result{Status: StatusStoreFailure, Message: storeFailureMessage}
		}
		return Result{Status: StatusSuccess, IsFavorite: true}

	case ActionDeregister:
		if err := s.repo.Remove(ctx, userID, storeID); err != nil {
			s.logg.Error(ctx, "favorite delete failed", err)
			return Result{Status: StatusStoreFailure, Message: storeFailureMessage}
		}
		return Result{Status: StatusSuccess, IsFavorite: false}

	default:
		return Result{Status: StatusInvalidAction, Message: invalidActionMessage}
	}
}

// List returns the user's favorites, most recent first.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]FavoriteDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	return items, nil
}
