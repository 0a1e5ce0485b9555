package db_models

import "github.com/google/uuid"

type Feedback struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
}
