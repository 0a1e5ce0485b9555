package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrikids/internal/models/db_models"
)

type FoodRepository interface {
	Upsert(ctx context.Context, food *db_models.Food) error
	FindByName(ctx context.Context, name string) (*db_models.Food, error)
	SearchByEmbedding(ctx context.Context, embedding pgvector.Vector, limit int) ([]db_models.Food, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Upsert(ctx context.Context, food *db_models.Food) error {
	existing, err := r.FindByName(ctx, food.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		food.ID = existing.ID
		return r.db.WithContext(ctx).Save(food).Error
	}
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) FindByName(ctx context.Context, name string) (*db_models.Food, error) {
	var food db_models.Food
	err := r.db.WithContext(ctx).First(&food, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) SearchByEmbedding(ctx context.Context, embedding pgvector.Vector, limit int) ([]db_models.Food, error) {
	var foods []db_models.Food
	err := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{embedding}}}).
		Limit(limit).
		Find(&foods).Error
	return foods, err
}
