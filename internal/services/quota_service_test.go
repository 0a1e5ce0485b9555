package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

func newQuotaFixture(t *testing.T) (QuotaService, *fakeAccountRepo, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	accountRepo := newFakeAccountRepo()
	return NewQuotaService(accountRepo, newFakeConfigRepo(), clock), accountRepo, clock
}

func TestAuthorizeRejectsUnknownActionKind(t *testing.T) {
	quota, _, _ := newQuotaFixture(t)

	err := quota.Authorize(context.Background(), uuid.New(), repositories.UsageKind("export_pdf"))
	assert.ErrorIs(t, err, utils.ErrInvalidActionKind)
}

func TestAuthorizeUnknownAccount(t *testing.T) {
	quota, _, _ := newQuotaFixture(t)

	err := quota.Authorize(context.Background(), uuid.New(), repositories.UsageScan)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAuthorizeDeniesOverDailyLimit(t *testing.T) {
	quota, accountRepo, clock := newQuotaFixture(t)
	account := accountRepo.add(&db_models.Account{LastUsageReset: clock.now.Unix()})

	// Default free tier allows 3 scans.
	for i := 0; i < 3; i++ {
		require.NoError(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan))
	}

	err := quota.Authorize(context.Background(), account.ID, repositories.UsageScan)
	assert.ErrorIs(t, err, utils.ErrDailyLimitReached)

	// The scan cap does not consume coach messages.
	assert.NoError(t, quota.Authorize(context.Background(), account.ID, repositories.UsageCoachMessage))
}

func TestAuthorizePremiumBypassesCounters(t *testing.T) {
	quota, accountRepo, clock := newQuotaFixture(t)
	start := clock.now.Add(-time.Hour).Unix()
	end := clock.now.Add(time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{
		PremiumStart:   &start,
		PremiumEnd:     &end,
		ScansUsedToday: 99,
		LastUsageReset: clock.now.Unix(),
	})

	for i := 0; i < 10; i++ {
		require.NoError(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan))
	}

	stored, err := accountRepo.FindById(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, stored.ScansUsedToday, "premium traffic must not touch the counters")
}

func TestAuthorizeLazyDailyReset(t *testing.T) {
	quota, accountRepo, clock := newQuotaFixture(t)
	account := accountRepo.add(&db_models.Account{LastUsageReset: clock.now.Unix()})

	for i := 0; i < 3; i++ {
		require.NoError(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan))
	}
	require.ErrorIs(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan), utils.ErrDailyLimitReached)

	// Next calendar day: the first touch resets the counters.
	clock.Advance(24 * time.Hour)

	require.NoError(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan))

	stored, err := accountRepo.FindById(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ScansUsedToday)
	assert.Equal(t, clock.now.Unix(), stored.LastUsageReset)
}

func TestAuthorizeExpiredPremiumFallsBackToFreeTier(t *testing.T) {
	quota, accountRepo, clock := newQuotaFixture(t)
	start := clock.now.Add(-48 * time.Hour).Unix()
	end := clock.now.Add(-time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{
		PremiumStart:   &start,
		PremiumEnd:     &end,
		LastUsageReset: clock.now.Unix(),
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan))
	}
	assert.ErrorIs(t, quota.Authorize(context.Background(), account.ID, repositories.UsageScan), utils.ErrDailyLimitReached)
}
