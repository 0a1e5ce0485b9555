package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutrikids/internal/models/db_models"
)

type ConfigRepository interface {
	// GetOrCreate returns the single app_config row, creating the default
	// one on first read.
	GetOrCreate(ctx context.Context) (*db_models.AppConfig, error)
	Update(ctx context.Context, cfg *db_models.AppConfig) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) GetOrCreate(ctx context.Context) (*db_models.AppConfig, error) {
	var cfg db_models.AppConfig
	err := r.db.WithContext(ctx).First(&cfg, "key = ?", db_models.AppConfigKey).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	def := db_models.DefaultAppConfig()
	if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
		return nil, err
	}
	return def, nil
}

func (r *configRepository) Update(ctx context.Context, cfg *db_models.AppConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
