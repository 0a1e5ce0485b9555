package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type MealType string

const (
	MealBreakfast MealType = "colazione"
	MealLunch     MealType = "pranzo"
	MealDinner    MealType = "cena"
	MealSnack     MealType = "snack"
)

type DiaryEntry struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index"`
	ChildID   *uuid.UUID `gorm:"type:uuid;index"`
	MealType  MealType   `gorm:"size:16"`
	// Calendar day the meal belongs to, "2006-01-02".
	Date        string `gorm:"size:10;index"`
	Description string
	PhotoBase64 string `gorm:"type:text"`

	// AI-estimated nutrition payload from the photo scanner.
	NutritionalInfo datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Embedding of the description, used for similar-meal lookup.
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
