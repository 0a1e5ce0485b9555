package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nutrikids/internal/config"
	"nutrikids/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.ChildProfile{},
		&db_models.ReferralRecord{},
		&db_models.DiaryEntry{},
		&db_models.Food{},
		&db_models.MealPlan{},
		&db_models.MealPlanDay{},
		&db_models.Plan{},
		&db_models.Transaction{},
		&db_models.AppConfig{},
		&db_models.PushToken{},
		&db_models.NotificationPreferences{},
		&db_models.Feedback{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
