package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrikids/internal/models/db_models"
	"nutrikids/pkg/utils"
)

func newEntitlementFixture(t *testing.T) (EntitlementService, *fakeAccountRepo, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	accountRepo := newFakeAccountRepo()
	return NewEntitlementService(accountRepo, clock), accountRepo, clock
}

func TestStartTrialOpensSevenDayWindow(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)
	account := accountRepo.add(&db_models.Account{})

	require.NoError(t, svc.StartTrial(context.Background(), account.ID))

	stored, err := accountRepo.FindById(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsTrial)
	assert.True(t, stored.TrialUsed)
	assert.Equal(t, clock.now.Unix(), *stored.PremiumStart)
	assert.Equal(t, clock.now.Add(TrialDuration).Unix(), *stored.PremiumEnd)

	entitled, err := svc.IsEntitled(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, entitled)
}

func TestStartTrialIsOneShot(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)
	account := accountRepo.add(&db_models.Account{})

	require.NoError(t, svc.StartTrial(context.Background(), account.ID))

	// Still inside the window.
	assert.ErrorIs(t, svc.StartTrial(context.Background(), account.ID), utils.ErrTrialAlreadyUsed)

	// Long after it expired the denial persists.
	clock.Advance(TrialDuration + 24*time.Hour)
	assert.ErrorIs(t, svc.StartTrial(context.Background(), account.ID), utils.ErrTrialAlreadyUsed)
}

func TestStartTrialDeniedWhilePremium(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)
	start := clock.now.Unix()
	end := clock.now.Add(30 * 24 * time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{PremiumStart: &start, PremiumEnd: &end})

	assert.ErrorIs(t, svc.StartTrial(context.Background(), account.ID), utils.ErrAlreadyPremium)
}

func TestStartTrialUnknownAccount(t *testing.T) {
	svc, _, _ := newEntitlementFixture(t)
	assert.ErrorIs(t, svc.StartTrial(context.Background(), uuid.New()), utils.ErrAccountNotFound)
}

func TestGrantOrExtendStacksOntoActiveWindow(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)
	start := clock.now.Add(-24 * time.Hour).Unix()
	end := clock.now.Add(10 * 24 * time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{PremiumStart: &start, PremiumEnd: &end, IsTrial: true})

	require.NoError(t, svc.GrantOrExtend(context.Background(), account.ID, 30*24*time.Hour))

	stored, err := accountRepo.FindById(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, start, *stored.PremiumStart, "active window keeps its start")
	assert.Equal(t, end+30*24*3600, *stored.PremiumEnd, "grant extends from the current end")
	assert.False(t, stored.IsTrial, "paid or rewarded time is not a trial")
}

func TestGrantOrExtendRestartsExpiredWindow(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)
	start := clock.now.Add(-60 * 24 * time.Hour).Unix()
	end := clock.now.Add(-30 * 24 * time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{PremiumStart: &start, PremiumEnd: &end})

	require.NoError(t, svc.GrantOrExtend(context.Background(), account.ID, 30*24*time.Hour))

	stored, err := accountRepo.FindById(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, clock.now.Unix(), *stored.PremiumStart)
	assert.Equal(t, clock.now.Add(30*24*time.Hour).Unix(), *stored.PremiumEnd)
}

func TestExpireSweepClearsOnlyEndedTrials(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)

	expiredStart := clock.now.Add(-10 * 24 * time.Hour).Unix()
	expiredEnd := clock.now.Add(-time.Hour).Unix()
	expired := accountRepo.add(&db_models.Account{
		PremiumStart: &expiredStart, PremiumEnd: &expiredEnd, IsTrial: true, TrialUsed: true,
	})

	activeStart := clock.now.Unix()
	activeEnd := clock.now.Add(3 * 24 * time.Hour).Unix()
	active := accountRepo.add(&db_models.Account{
		PremiumStart: &activeStart, PremiumEnd: &activeEnd, IsTrial: true, TrialUsed: true,
	})

	ids, err := svc.ExpireSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{expired.ID}, ids)

	stillActive, err := accountRepo.FindById(context.Background(), active.ID)
	require.NoError(t, err)
	assert.True(t, stillActive.IsTrial)
}

func TestStatusReportsWindowAndTodaysUsage(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)
	start := clock.now.Add(-24 * time.Hour).Unix()
	end := clock.now.Add(6 * 24 * time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{
		PremiumStart: &start, PremiumEnd: &end, IsTrial: true, TrialUsed: true,
		ScansUsedToday: 2, CoachMessagesUsedToday: 4,
		LastUsageReset: utils.StartOfDay(clock.now).Unix(),
	})

	snapshot, err := svc.Status(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, snapshot.IsPremium)
	assert.True(t, snapshot.IsTrial)
	assert.Equal(t, start, *snapshot.PremiumStart)
	assert.Equal(t, end, *snapshot.PremiumEnd)
	assert.Equal(t, 2, snapshot.ScansUsedToday)
	assert.Equal(t, 4, snapshot.CoachMessagesUsedToday)

	// Counters reset lazily; a row last reset yesterday reads as zero.
	clock.Advance(24 * time.Hour)
	snapshot, err = svc.Status(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Zero(t, snapshot.ScansUsedToday)
	assert.Zero(t, snapshot.CoachMessagesUsedToday)
}

func TestEntitlementDerivedFromWindowNotFlags(t *testing.T) {
	svc, accountRepo, clock := newEntitlementFixture(t)

	// The trial flag alone grants nothing once the window has passed.
	start := clock.now.Add(-20 * 24 * time.Hour).Unix()
	end := clock.now.Add(-13 * 24 * time.Hour).Unix()
	account := accountRepo.add(&db_models.Account{
		PremiumStart: &start, PremiumEnd: &end, IsTrial: true, TrialUsed: true,
	})

	entitled, err := svc.IsEntitled(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, entitled)
}
