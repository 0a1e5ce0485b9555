package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrikids/internal/models/db_models"
)

type ReferralRepository interface {
	Insert(ctx context.Context, record *db_models.ReferralRecord) error
	FindByCode(ctx context.Context, code string) (*db_models.ReferralRecord, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.ReferralRecord, error)

	// AppendPendingInvite records a fresh registration against the code.
	AppendPendingInvite(ctx context.Context, code string, inviteeID uuid.UUID) error

	// ApplyLedger loads the owner's record with a row lock, runs apply and
	// persists the invite sets and reward counters together. Concurrent
	// conversions for the same referrer serialize on the lock, so the
	// reward math always reads the post-mutation successful count.
	ApplyLedger(ctx context.Context, ownerID uuid.UUID, apply func(*db_models.ReferralRecord) error) (*db_models.ReferralRecord, error)
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) Insert(ctx context.Context, record *db_models.ReferralRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *referralRepository) FindByCode(ctx context.Context, code string) (*db_models.ReferralRecord, error) {
	var record db_models.ReferralRecord
	err := r.db.WithContext(ctx).First(&record, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *referralRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.ReferralRecord, error) {
	var record db_models.ReferralRecord
	err := r.db.WithContext(ctx).First(&record, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *referralRepository) AppendPendingInvite(ctx context.Context, code string, inviteeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.ReferralRecord{}).
		Where("code = ?", code).
		UpdateColumn("pending_invites",
			gorm.Expr("array_append(pending_invites, ?)", inviteeID.String())).Error
}

func (r *referralRepository) ApplyLedger(ctx context.Context, ownerID uuid.UUID, apply func(*db_models.ReferralRecord) error) (*db_models.ReferralRecord, error) {
	var record db_models.ReferralRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, "owner_id = ?", ownerID).Error; err != nil {
			return err
		}
		if err := apply(&record); err != nil {
			return err
		}
		return tx.Model(&record).
			Updates(map[string]interface{}{
				"pending_invites":    record.PendingInvites,
				"successful_invites": record.SuccessfulInvites,
				"rewards_claimed":    record.RewardsClaimed,
				"rewards_year_start": record.RewardsYearStart,
				"last_reward_at":     record.LastRewardAt,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
