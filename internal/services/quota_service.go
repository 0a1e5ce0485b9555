package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

// QuotaService gatekeeps the rate-limited free-tier actions. Premium
// accounts bypass it entirely; free accounts consume from daily counters
// that reset lazily on first use after midnight.
type QuotaService interface {
	// Authorize returns nil when the action may proceed, having consumed
	// one unit of the relevant counter. ErrDailyLimitReached is a
	// first-class denial, not a fault.
	Authorize(ctx context.Context, accountID uuid.UUID, kind repositories.UsageKind) error
}

type quotaService struct {
	accountRepo repositories.AccountRepository
	configRepo  repositories.ConfigRepository
	clock       utils.Clock
}

func NewQuotaService(accountRepo repositories.AccountRepository, configRepo repositories.ConfigRepository, clock utils.Clock) QuotaService {
	return &quotaService{
		accountRepo: accountRepo,
		configRepo:  configRepo,
		clock:       clock,
	}
}

func (q *quotaService) Authorize(ctx context.Context, accountID uuid.UUID, kind repositories.UsageKind) error {
	if kind != repositories.UsageScan && kind != repositories.UsageCoachMessage {
		return utils.ErrInvalidActionKind
	}

	account, err := q.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	now := q.clock.Now()
	if account.IsEntitled(now) {
		return nil
	}

	// Lazy daily reset: zero the counters the first time they are touched
	// on a new calendar day. The repository guards the update with the
	// stored reset instant, so concurrent requests reset at most once.
	dayStart := utils.StartOfDay(now)
	if time.Unix(account.LastUsageReset, 0).Before(dayStart) {
		if err := q.accountRepo.ResetDailyUsage(ctx, accountID, dayStart, now); err != nil {
			return utils.ErrDatabaseError
		}
	}

	limit, err := q.limitFor(ctx, kind)
	if err != nil {
		return err
	}

	allowed, err := q.accountRepo.IncrementUsageBelowLimit(ctx, accountID, kind, limit)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !allowed {
		return utils.ErrDailyLimitReached
	}
	return nil
}

func (q *quotaService) limitFor(ctx context.Context, kind repositories.UsageKind) (int, error) {
	cfg, err := q.configRepo.GetOrCreate(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if kind == repositories.UsageCoachMessage {
		return cfg.MaxFreeCoachMessages, nil
	}
	return cfg.MaxFreeScans, nil
}
