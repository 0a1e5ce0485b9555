package db_models

// AppConfig is a single-row document of runtime-tunable settings managed by
// the admin endpoints. A default row is created on first read.
type AppConfig struct {
	BaseModel
	Key string `gorm:"uniqueIndex;default:app_config"`

	PremiumMonthlyPrice float64 `gorm:"default:9.99"`
	PremiumYearlyPrice  float64 `gorm:"default:71.88"`
	OpenAIModel         string  `gorm:"default:gpt-4o-mini"`
	VisionModel         string  `gorm:"default:gpt-4o"`

	// Free-tier daily limits enforced by the quota service.
	MaxFreeScans         int `gorm:"default:3"`
	MaxFreeCoachMessages int `gorm:"default:5"`
}

const AppConfigKey = "app_config"

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Key:                  AppConfigKey,
		PremiumMonthlyPrice:  9.99,
		PremiumYearlyPrice:   71.88,
		OpenAIModel:          "gpt-4o-mini",
		VisionModel:          "gpt-4o",
		MaxFreeScans:         3,
		MaxFreeCoachMessages: 5,
	}
}
