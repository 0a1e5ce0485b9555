package db_models

import "github.com/google/uuid"

type PushToken struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Token     string
	Language  string `gorm:"size:2;default:it"`
}

type NotificationPreferences struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Enabled       bool      `gorm:"default:true"`
	MealReminders bool      `gorm:"default:true"`
	WeeklyReport  bool      `gorm:"default:true"`
}
