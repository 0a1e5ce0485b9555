package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Food is a catalog entry with per-100g nutrition facts, searchable by
// embedding similarity.
type Food struct {
	BaseModel
	Name     string `gorm:"uniqueIndex"`
	Category string
	Tags     pq.StringArray `gorm:"type:text[]"`

	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
	Fiber    float64

	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
