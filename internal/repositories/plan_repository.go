package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutrikids/internal/models/db_models"
)

type PlanRepository interface {
	GetByCode(ctx context.Context, code string) (*db_models.Plan, error)
	GetById(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	GetAllActive(ctx context.Context) ([]db_models.Plan, error)
	Upsert(ctx context.Context, plan *db_models.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) GetByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "code = ? AND is_active = TRUE", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *planRepository) GetById(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *planRepository) GetAllActive(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Where("is_active = TRUE").Find(&plans).Error
	return plans, err
}

func (p *planRepository) Upsert(ctx context.Context, plan *db_models.Plan) error {
	existing, err := p.GetByCode(ctx, plan.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		plan.ID = existing.ID
		return p.db.WithContext(ctx).Save(plan).Error
	}
	return p.db.WithContext(ctx).Create(plan).Error
}
