package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrikids/internal/models/db_models"
)

type PushTokenRepository interface {
	Upsert(ctx context.Context, token *db_models.PushToken) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.PushToken, error)
	ListAll(ctx context.Context) ([]db_models.PushToken, error)

	UpsertPreferences(ctx context.Context, prefs *db_models.NotificationPreferences) error
	FindPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreferences, error)
}

type pushTokenRepository struct {
	db *gorm.DB
}

func NewPushTokenRepository(db *gorm.DB) PushTokenRepository {
	return &pushTokenRepository{db: db}
}

func (r *pushTokenRepository) Upsert(ctx context.Context, token *db_models.PushToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "language", "updated_at"}),
		}).
		Create(token).Error
}

func (r *pushTokenRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.PushToken, error) {
	var token db_models.PushToken
	err := r.db.WithContext(ctx).First(&token, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *pushTokenRepository) ListAll(ctx context.Context) ([]db_models.PushToken, error) {
	var tokens []db_models.PushToken
	err := r.db.WithContext(ctx).Find(&tokens).Error
	return tokens, err
}

func (r *pushTokenRepository) UpsertPreferences(ctx context.Context, prefs *db_models.NotificationPreferences) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "meal_reminders", "weekly_report", "updated_at"}),
		}).
		Create(prefs).Error
}

func (r *pushTokenRepository) FindPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreferences, error) {
	var prefs db_models.NotificationPreferences
	err := r.db.WithContext(ctx).First(&prefs, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}
