package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrikids/internal/models/db_models"
)

type ChildRepository interface {
	Insert(ctx context.Context, child *db_models.ChildProfile) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.ChildProfile, error)
	FindByParent(ctx context.Context, parentID uuid.UUID) ([]db_models.ChildProfile, error)
	Update(ctx context.Context, child *db_models.ChildProfile) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ApplyGamification loads the child row with a row lock, runs apply on
	// it and persists points, level and badges in the same transaction, so
	// no partially applied award is ever observable.
	ApplyGamification(ctx context.Context, id uuid.UUID, apply func(*db_models.ChildProfile) error) (*db_models.ChildProfile, error)
}

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Insert(ctx context.Context, child *db_models.ChildProfile) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.ChildProfile, error) {
	var child db_models.ChildProfile
	err := r.db.WithContext(ctx).First(&child, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) FindByParent(ctx context.Context, parentID uuid.UUID) ([]db_models.ChildProfile, error) {
	var children []db_models.ChildProfile
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&children).Error
	return children, err
}

func (r *childRepository) Update(ctx context.Context, child *db_models.ChildProfile) error {
	return r.db.WithContext(ctx).Save(child).Error
}

func (r *childRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.ChildProfile{}, "id = ?", id).Error
}

func (r *childRepository) ApplyGamification(ctx context.Context, id uuid.UUID, apply func(*db_models.ChildProfile) error) (*db_models.ChildProfile, error) {
	var child db_models.ChildProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&child, "id = ?", id).Error; err != nil {
			return err
		}
		if err := apply(&child); err != nil {
			return err
		}
		return tx.Model(&child).
			Updates(map[string]interface{}{
				"points": child.Points,
				"level":  child.Level,
				"badges": child.Badges,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}
