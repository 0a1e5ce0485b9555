package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

const TrialDuration = 7 * 24 * time.Hour

// EntitlementService is the subscription window manager. Entitlement is
// always derived from the stored window, so a skipped or delayed sweep can
// never grant access that should have expired.
type EntitlementService interface {
	IsEntitled(ctx context.Context, accountID uuid.UUID) (bool, error)
	Status(ctx context.Context, accountID uuid.UUID) (*WindowSnapshot, error)
	StartTrial(ctx context.Context, accountID uuid.UUID) error
	GrantOrExtend(ctx context.Context, accountID uuid.UUID, duration time.Duration) error

	// ExpireSweep clears the trial flag on accounts whose trial window has
	// ended and returns their ids. Invoked by the scheduler, never by the
	// request path.
	ExpireSweep(ctx context.Context) ([]uuid.UUID, error)
}

type entitlementService struct {
	accountRepo repositories.AccountRepository
	clock       utils.Clock
}

func NewEntitlementService(accountRepo repositories.AccountRepository, clock utils.Clock) EntitlementService {
	return &entitlementService{
		accountRepo: accountRepo,
		clock:       clock,
	}
}

func (e *entitlementService) IsEntitled(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if account == nil {
		return false, utils.ErrAccountNotFound
	}
	return account.IsEntitled(e.clock.Now()), nil
}

func (e *entitlementService) Status(ctx context.Context, accountID uuid.UUID) (*WindowSnapshot, error) {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	snap := SnapshotOf(account, e.clock.Now())
	return &snap, nil
}

func (e *entitlementService) StartTrial(ctx context.Context, accountID uuid.UUID) error {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	now := e.clock.Now()
	if account.TrialUsed {
		return utils.ErrTrialAlreadyUsed
	}
	if account.IsEntitled(now) {
		return utils.ErrAlreadyPremium
	}

	// The repository re-checks both conditions inside a single guarded
	// UPDATE, so a concurrent trial start or payment cannot slip through
	// between the read above and the write.
	ok, err := e.accountRepo.StartTrial(ctx, accountID, now, TrialDuration)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		refreshed, err := e.accountRepo.FindById(ctx, accountID)
		if err != nil || refreshed == nil {
			return utils.ErrDatabaseError
		}
		if refreshed.TrialUsed {
			return utils.ErrTrialAlreadyUsed
		}
		return utils.ErrAlreadyPremium
	}
	return nil
}

func (e *entitlementService) GrantOrExtend(ctx context.Context, accountID uuid.UUID, duration time.Duration) error {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if err := e.accountRepo.GrantOrExtend(ctx, accountID, e.clock.Now(), duration); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *entitlementService) ExpireSweep(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := e.accountRepo.ClearExpiredTrials(ctx, e.clock.Now())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return ids, nil
}

// WindowSnapshot is the subscription view returned to clients: the premium
// window plus today's usage counters.
type WindowSnapshot struct {
	IsPremium    bool   `json:"is_premium"`
	IsTrial      bool   `json:"is_trial"`
	TrialUsed    bool   `json:"trial_used"`
	PremiumStart *int64 `json:"premium_start,omitempty"`
	PremiumEnd   *int64 `json:"premium_end,omitempty"`

	ScansUsedToday         int `json:"scans_used_today"`
	CoachMessagesUsedToday int `json:"coach_messages_used_today"`
}

func SnapshotOf(account *db_models.Account, now time.Time) WindowSnapshot {
	scans, coach := account.ScansUsedToday, account.CoachMessagesUsedToday
	// Counters reset lazily on the first quota check of the day; a stale
	// row still reports zero here.
	if account.LastUsageReset < utils.StartOfDay(now).Unix() {
		scans, coach = 0, 0
	}
	return WindowSnapshot{
		IsPremium:              account.IsEntitled(now),
		IsTrial:                account.IsTrial,
		TrialUsed:              account.TrialUsed,
		PremiumStart:           account.PremiumStart,
		PremiumEnd:             account.PremiumEnd,
		ScansUsedToday:         scans,
		CoachMessagesUsedToday: coach,
	}
}
