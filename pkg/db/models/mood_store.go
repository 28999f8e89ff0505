package models

import "time"

// MoodStore pairs a four-character diagnosis code with the store it
// recommends. Seeded once per environment, read-only at runtime.
type MoodStore struct {
	StoreID       string    `gorm:"column:store_id;type:text;primaryKey"`
	Name          string    `gorm:"column:name;type:text;not null"`
	Location      string    `gorm:"column:location;type:text;not null"`
	URL           string    `gorm:"column:url;type:text;not null"`
	DiagnosisCode string    `gorm:"column:diagnosis_code;type:varchar(4);not null;index:mood_stores_diagnosis_code_idx"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
