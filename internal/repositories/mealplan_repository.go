package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutrikids/internal/models/db_models"
)

type MealPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.MealPlan) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.MealPlan, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.MealPlan, error)
	Update(ctx context.Context, plan *db_models.MealPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) Insert(ctx context.Context, plan *db_models.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.MealPlan, error) {
	var plan db_models.MealPlan
	err := r.db.WithContext(ctx).
		Preload("Days").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.MealPlan, error) {
	var plans []db_models.MealPlan
	err := r.db.WithContext(ctx).
		Preload("Days").
		Where("account_id = ?", accountID).
		Order("week_start DESC").
		Find(&plans).Error
	return plans, err
}

func (r *mealPlanRepository) Update(ctx context.Context, plan *db_models.MealPlan) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(plan).Error
}

func (r *mealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.MealPlanDay{}, "meal_plan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.MealPlan{}, "id = ?", id).Error
	})
}
