package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite links a user to a bookmarked store by its place ID.
type Favorite struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:favorites_user_id_idx;uniqueIndex:favorites_user_store_key"`
	StoreID   string    `gorm:"column:store_id;type:text;not null;uniqueIndex:favorites_user_store_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns the primary key when the caller did not.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
