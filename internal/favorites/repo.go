package favorites

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/db/models"
)

// Repository encapsulates favorite persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a favorites repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// IsFavorite reports whether the (user, store) pair exists.
func (r *Repository) IsFavorite(ctx context.Context, userID uuid.UUID, storeID string) (bool, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&favorite).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Add inserts a favorite entry and ignores duplicates.
func (r *Repository) Add(ctx context.Context, userID uuid.UUID, storeID string) error {
	if userID == uuid.Nil || storeID == "" {
		return gorm.ErrInvalidValue
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Favorite{UserID: userID, StoreID: storeID}).
		Error
}

// Remove deletes the pair if it exists. Deleting an absent row is not an error.
func (r *Repository) Remove(ctx context.Context, userID uuid.UUID, storeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Delete(&models.Favorite{}).
		Error
}

// ListByUser returns the user's favorites, most recent first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]FavoriteDTO, error) {
	var rows []models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]FavoriteDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, FavoriteDTO{
			StoreID:   row.StoreID,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}
