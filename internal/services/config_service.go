package services

import (
	"context"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

// ConfigService exposes the runtime-tunable settings to the admin API.
type ConfigService interface {
	Get(ctx context.Context) (*db_models.AppConfig, error)
	Update(ctx context.Context, req request_models.AppConfigUpdateRequest) (*db_models.AppConfig, error)
	GetValue(ctx context.Context, key string) (any, error)
}

type configService struct {
	configRepo repositories.ConfigRepository
}

func NewConfigService(configRepo repositories.ConfigRepository) ConfigService {
	return &configService{configRepo: configRepo}
}

func (s *configService) Get(ctx context.Context) (*db_models.AppConfig, error) {
	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cfg, nil
}

func (s *configService) Update(ctx context.Context, req request_models.AppConfigUpdateRequest) (*db_models.AppConfig, error) {
	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.PremiumMonthlyPrice != nil {
		cfg.PremiumMonthlyPrice = *req.PremiumMonthlyPrice
	}
	if req.PremiumYearlyPrice != nil {
		cfg.PremiumYearlyPrice = *req.PremiumYearlyPrice
	}
	if req.OpenAIModel != nil {
		cfg.OpenAIModel = *req.OpenAIModel
	}
	if req.VisionModel != nil {
		cfg.VisionModel = *req.VisionModel
	}
	if req.MaxFreeScans != nil {
		cfg.MaxFreeScans = *req.MaxFreeScans
	}
	if req.MaxFreeCoachMessages != nil {
		cfg.MaxFreeCoachMessages = *req.MaxFreeCoachMessages
	}

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cfg, nil
}

func (s *configService) GetValue(ctx context.Context, key string) (any, error) {
	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	switch key {
	case "premium_monthly_price":
		return cfg.PremiumMonthlyPrice, nil
	case "premium_yearly_price":
		return cfg.PremiumYearlyPrice, nil
	case "openai_model":
		return cfg.OpenAIModel, nil
	case "vision_model":
		return cfg.VisionModel, nil
	case "max_free_scans":
		return cfg.MaxFreeScans, nil
	case "max_free_coach_messages":
		return cfg.MaxFreeCoachMessages, nil
	default:
		return nil, utils.ErrConfigKeyNotFound
	}
}
