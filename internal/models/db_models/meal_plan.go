package db_models

import "github.com/google/uuid"

type MealPlan struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index"`
	ChildID   *uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	// Monday of the week the plan covers, "2006-01-02".
	WeekStart string `gorm:"size:10;index"`
	Notes     string

	Days []MealPlanDay `gorm:"foreignKey:MealPlanID"`
}

type MealPlanDay struct {
	BaseModel
	MealPlanID uuid.UUID `gorm:"type:uuid;index"`
	// 0 = Monday .. 6 = Sunday.
	Weekday   int
	Breakfast string
	Lunch     string
	Dinner    string
	Snack     string
}
