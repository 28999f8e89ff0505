package mood

import (
	"context"

	"gorm.io/gorm"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/db/models"
)

// Repository reads the seeded mood-code table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a mood repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByDiagnosisCode returns all seeded stores mapped to the code.
// No match is an empty slice, not an error.
func (r *Repository) FindByDiagnosisCode(ctx context.Context, code string) ([]RecommendedStore, error) {
	var rows []models.MoodStore
	err := r.db.WithContext(ctx).
		Where("diagnosis_code = ?", code).
		Order("store_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	stores := make([]RecommendedStore, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, RecommendedStore{
			StoreID:  row.StoreID,
			Name:     row.Name,
			Location: row.Location,
			URL:      row.URL,
		})
	}
	return stores, nil
}
