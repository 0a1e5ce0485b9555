package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrikids/internal/models/db_models"
)

type DiaryRepository interface {
	Insert(ctx context.Context, entry *db_models.DiaryEntry) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.DiaryEntry, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID, date string, limit int) ([]db_models.DiaryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountForAccountSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error)

	// FindSimilar orders past entries of the account by embedding distance.
	FindSimilar(ctx context.Context, accountID uuid.UUID, embedding pgvector.Vector, limit int) ([]db_models.DiaryEntry, error)
}

type diaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) Insert(ctx context.Context, entry *db_models.DiaryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *diaryRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.DiaryEntry, error) {
	var entry db_models.DiaryEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *diaryRepository) FindByAccount(ctx context.Context, accountID uuid.UUID, date string, limit int) ([]db_models.DiaryEntry, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var entries []db_models.DiaryEntry
	err := q.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *diaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.DiaryEntry{}, "id = ?", id).Error
}

func (r *diaryRepository) CountForAccountSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.DiaryEntry{}).
		Where("account_id = ? AND created_at >= ?", accountID, since.Unix()).
		Count(&count).Error
	return count, err
}

func (r *diaryRepository) FindSimilar(ctx context.Context, accountID uuid.UUID, embedding pgvector.Vector, limit int) ([]db_models.DiaryEntry, error) {
	var entries []db_models.DiaryEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{embedding}}}).
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
