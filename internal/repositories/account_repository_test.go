package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedRepo(t *testing.T) (AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return NewAccountRepository(gdb), mock
}

func TestIncrementUsageBelowLimitAllowed(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "scans_used_today"=scans_used_today + 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.IncrementUsageBelowLimit(context.Background(), id, UsageScan, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementUsageBelowLimitDeniedAtCap(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()

	// The guarded UPDATE matches no row once the counter hit the limit.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "coach_messages_used_today"=coach_messages_used_today + 1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.IncrementUsageBelowLimit(context.Background(), id, UsageCoachMessage, 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartTrialGuardReportsConflict(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// trial_used or an active window makes the WHERE clause match nothing.
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.StartTrial(context.Background(), id, now, 7*24*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartTrialOpensWindow(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.StartTrial(context.Background(), id, now, 7*24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantOrExtendSingleStatement(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// Extend-or-restart is one CASE-based UPDATE, never read-modify-write.
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.GrantOrExtend(context.Background(), id, now, 30*24*time.Hour)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearExpiredTrialsSingleGuardedStatement(t *testing.T) {
	repo, mock := newMockedRepo(t)
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sweptID := uuid.New()

	// One UPDATE ... RETURNING id. An account that pays between tick and
	// sweep no longer matches the guard, so it is neither cleared nor
	// reported for the trial-ended push.
	mock.ExpectQuery(`UPDATE "accounts" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(sweptID.String()))

	ids, err := repo.ClearExpiredTrials(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{sweptID}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearExpiredTrialsNothingDue(t *testing.T) {
	repo, mock := newMockedRepo(t)
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE "accounts" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ClearExpiredTrials(context.Background(), now)
	require.NoError(t, err)
	assert.Nil(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetDailyUsageGuardedByDayStart(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ResetDailyUsage(context.Background(), id, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
