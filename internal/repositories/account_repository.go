package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrikids/internal/models/db_models"
)

// UsageKind selects which daily counter an operation touches.
type UsageKind string

const (
	UsageScan         UsageKind = "scan"
	UsageCoachMessage UsageKind = "coach_message"
)

func (k UsageKind) column() string {
	if k == UsageCoachMessage {
		return "coach_messages_used_today"
	}
	return "scans_used_today"
}

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	ListAll(ctx context.Context) ([]db_models.Account, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// ResetDailyUsage zeroes both counters iff the stored reset instant is
	// before dayStart. One guarded UPDATE, idempotent under races.
	ResetDailyUsage(ctx context.Context, id uuid.UUID, dayStart, now time.Time) error

	// IncrementUsageBelowLimit bumps a counter by one iff it is under
	// limit, in a single statement. Returns false when the cap was hit.
	IncrementUsageBelowLimit(ctx context.Context, id uuid.UUID, kind UsageKind, limit int) (bool, error)

	// StartTrial opens the one-time trial window iff the trial was never
	// consumed and no window is currently active. Returns false otherwise.
	StartTrial(ctx context.Context, id uuid.UUID, now time.Time, duration time.Duration) (bool, error)

	// GrantOrExtend stacks duration onto an active window or opens a fresh
	// one when the window is absent or expired, in a single statement.
	GrantOrExtend(ctx context.Context, id uuid.UUID, now time.Time, duration time.Duration) error

	// ClearExpiredTrials flips is_trial off for trial accounts whose window
	// has ended and returns their ids. Background maintenance only.
	ClearExpiredTrials(ctx context.Context, now time.Time) ([]uuid.UUID, error)

	// FindTrialsExpiringBetween lists trial accounts whose window ends
	// inside (from, to], for the expiry-warning notification.
	FindTrialsExpiringBetween(ctx context.Context, from, to time.Time) ([]db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (a *accountRepository) ResetDailyUsage(ctx context.Context, id uuid.UUID, dayStart, now time.Time) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ? AND last_usage_reset < ?", id, dayStart.Unix()).
		Updates(map[string]interface{}{
			"scans_used_today":          0,
			"coach_messages_used_today": 0,
			"last_usage_reset":          now.Unix(),
		}).Error
}

func (a *accountRepository) IncrementUsageBelowLimit(ctx context.Context, id uuid.UUID, kind UsageKind, limit int) (bool, error) {
	col := kind.column()
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ? AND "+col+" < ?", id, limit).
		UpdateColumn(col, gorm.Expr(col+" + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (a *accountRepository) StartTrial(ctx context.Context, id uuid.UUID, now time.Time, duration time.Duration) (bool, error) {
	start := now.Unix()
	end := now.Add(duration).Unix()
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ? AND trial_used = ? AND (premium_end IS NULL OR premium_end <= ?)", id, false, start).
		Updates(map[string]interface{}{
			"premium_start": start,
			"premium_end":   end,
			"is_trial":      true,
			"trial_used":    true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (a *accountRepository) GrantOrExtend(ctx context.Context, id uuid.UUID, now time.Time, duration time.Duration) error {
	ts := now.Unix()
	secs := int64(duration / time.Second)
	// Active window extends from its end; expired or absent window restarts
	// at now. Reward/payment funding also clears the trial flag.
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"premium_start": gorm.Expr(
				"CASE WHEN premium_end IS NOT NULL AND premium_end > ? THEN premium_start ELSE ? END", ts, ts),
			"premium_end": gorm.Expr(
				"CASE WHEN premium_end IS NOT NULL AND premium_end > ? THEN premium_end + ? ELSE ? END", ts, secs, ts+secs),
			"is_trial": false,
		}).Error
}

func (a *accountRepository) ClearExpiredTrials(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	// One guarded UPDATE with RETURNING: an account that pays between a
	// separate read and write would otherwise be swept as a trial.
	var swept []db_models.Account
	err := a.db.WithContext(ctx).
		Model(&swept).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("is_trial = ? AND premium_end IS NOT NULL AND premium_end <= ?", true, now.Unix()).
		Update("is_trial", false).Error
	if err != nil {
		return nil, err
	}
	if len(swept) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(swept))
	for _, acc := range swept {
		ids = append(ids, acc.ID)
	}
	return ids, nil
}

func (a *accountRepository) FindTrialsExpiringBetween(ctx context.Context, from, to time.Time) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Where("is_trial = ? AND premium_end > ? AND premium_end <= ?", true, from.Unix(), to.Unix()).
		Find(&accounts).Error
	return accounts, err
}
