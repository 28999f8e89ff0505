package favorites

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
)

type stubResolver struct {
	err error
}

func (s *stubResolver) ResolveStoreID(ctx context.Context, identifier string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return identifier, nil
}

type stubRepo struct {
	favorites map[string]bool
	addErr    error
	checkErr  error
	removeErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{favorites: make(map[string]bool)}
}

func (s *stubRepo) key(userID uuid.UUID, storeID string) string {
	return userID.String() + ":" + storeID
}

func (s *stubRepo) IsFavorite(ctx context.Context, userID uuid.UUID, storeID string) (bool, error) {
	if s.checkErr != nil {
		return false, s.checkErr
	}
	return s.favorites[s.key(userID, storeID)], nil
}

func (s *stubRepo) Add(ctx context.Context, userID uuid.UUID, storeID string) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.favorites[s.key(userID, storeID)] = true
	return nil
}

func (s *stubRepo) Remove(ctx context.Context, userID uuid.UUID, storeID string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.favorites, s.key(userID, storeID))
	return nil
}

func (s *stubRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]FavoriteDTO, error) {
	return nil, nil
}

func newTestFavService(t *testing.T, repo FavoriteStore, resolver StoreResolver) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:     repo,
		Resolver: resolver,
		Logger:   logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestProcessMissingData(t *testing.T) {
	svc := newTestFavService(t, newStubRepo(), &stubResolver{})
	ctx := context.Background()
	userID := uuid.New()

	for _, action := range []Action{ActionCheckStatus, ActionRegister, ActionDeregister} {
		if result := svc.Process(ctx, action, uuid.Nil, "place-1"); result.Status != StatusMissingData {
			t.Fatalf("action %s with nil user: expected MISSING_DATA, got %s", action, result.Status)
		}
		if result := svc.Process(ctx, action, userID, ""); result.Status != StatusMissingData {
			t.Fatalf("action %s with empty store: expected MISSING_DATA, got %s", action, result.Status)
		}
	}

	if result := svc.Process(ctx, "", userID, "place-1"); result.Status != StatusMissingData {
		t.Fatalf("empty action: expected MISSING_DATA, got %s", result.Status)
	}
}

func TestProcessRegisterIsIdempotent(t *testing.T) {
	repo := newStubRepo()
	svc := newTestFavService(t, repo, &stubResolver{})
	ctx := context.Background()
	userID := uuid.New()

	first := svc.Process(ctx, ActionRegister, userID, "place-1")
	second := svc.Process(ctx, ActionRegister, userID, "place-1")
	if first.Status != StatusSuccess || second.Status != StatusSuccess {
		t.Fatalf("expected SUCCESS twice, got %s then %s", first.Status, second.Status)
	}
	if len(repo.favorites) != 1 {
		t.Fatalf("expected exactly one favorite row, got %d", len(repo.favorites))
	}
}

func TestProcessDeregisterAbsentRowIsSuccess(t *testing.T) {
	svc := newTestFavService(t, newStubRepo(), &stubResolver{})

	result := svc.Process(context.Background(), ActionDeregister, uuid.New(), "place-never-added")
	if result.Status != StatusSuccess {
		t.Fatalf("expected SUCCESS for idempotent delete, got %s", result.Status)
	}
}

func TestProcessCheckStatus(t *testing.T) {
	repo := newStubRepo()
	svc := newTestFavService(t, repo, &stubResolver{})
	ctx := context.Background()
	userID := uuid.New()

	result := svc.Process(ctx, ActionCheckStatus, userID, "place-1")
	if result.Status != StatusSuccess || result.IsFavorite {
		t.Fatalf("expected not-favorite, got %+v", result)
	}

	svc.Process(ctx, ActionRegister, userID, "place-1")
	result = svc.Process(ctx, ActionCheckStatus, userID, "place-1")
	if result.Status != StatusSuccess || !result.IsFavorite {
		t.Fatalf("expected favorite, got %+v", result)
	}
}

func TestProcessResolverFailure(t *testing.T) {
	svc := newTestFavService(t, newStubRepo(), &stubResolver{err: errors.New("NOT_FOUND")})

	result := svc.Process(context.Background(), ActionRegister, uuid.New(), "bogus")
	if result.Status != StatusProviderFailure {
		t.Fatalf("expected PROVIDER_FAILURE, got %s", result.Status)
	}
}

func TestProcessStoreFailures(t *testing.T) {
	repo := newStubRepo()
	repo.addErr = errors.New("insert failed")
	repo.checkErr = errors.New("select failed")
	repo.removeErr = errors.New("delete failed")
	svc := newTestFavService(t, repo, &stubResolver{})
	ctx := context.Background()
	userID := uuid.New()

	for _, action := range []Action{ActionCheckStatus, ActionRegister, ActionDeregister} {
		if result := svc.Process(ctx, action, userID, "place-1"); result.Status != StatusStoreFailure {
			t.Fatalf("action %s: expected STORE_FAILURE, got %s", action, result.Status)
		}
	}
}

func TestProcessUnknownAction(t *testing.T) {
	svc := newTestFavService(t, newStubRepo(), &stubResolver{})

	result := svc.Process(context.Background(), "purge", uuid.New(), "place-1")
	if result.Status != StatusInvalidAction {
		t.Fatalf("expected INVALID_ACTION, got %s", result.Status)
	}
}
