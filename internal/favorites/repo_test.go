package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/db/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Favorite{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepository(conn)
}

func TestRepositoryAddIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := repo.Add(ctx, userID, "place-1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.Add(ctx, userID, "place-1"); err != nil {
		t.Fatalf("duplicate add must not error: %v", err)
	}

	var count int64
	if err := repo.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestRepositoryCheckAndRemove(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	exists, err := repo.IsFavorite(ctx, userID, "place-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if exists {
		t.Fatal("expected no favorite yet")
	}

	if err := repo.Add(ctx, userID, "place-1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	exists, err = repo.IsFavorite(ctx, userID, "place-1")
	if err != nil {
		t.Fatalf("check after add: %v", err)
	}
	if !exists {
		t.Fatal("expected favorite present")
	}

	if err := repo.Remove(ctx, userID, "place-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.Remove(ctx, userID, "place-1"); err != nil {
		t.Fatalf("removing an absent row must not error: %v", err)
	}

	exists, _ = repo.IsFavorite(ctx, userID, "place-1")
	if exists {
		t.Fatal("expected favorite gone")
	}
}

func TestRepositoryListByUserOrdersNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	older := models.Favorite{UserID: userID, StoreID: "place-old", CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Favorite{UserID: userID, StoreID: "place-new", CreatedAt: time.Now()}
	for _, row := range []*models.Favorite{&older, &newer} {
		if err := repo.db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	// A different user's favorite must not leak into the list.
	if err := repo.Add(ctx, uuid.New(), "place-other"); err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(items))
	}
	if items[0].StoreID != "place-new" || items[1].StoreID != "place-old" {
		t.Fatalf("expected newest first, got %+v", items)
	}
}
