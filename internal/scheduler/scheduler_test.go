package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type notifyCounter struct {
	meals  map[string]int
	recaps int
	weekly int
	expiry int
}

func newNotifyCounter() *notifyCounter {
	return &notifyCounter{meals: make(map[string]int)}
}

func (n *notifyCounter) RegisterToken(ctx context.Context, accountID uuid.UUID, req request_models.RegisterPushTokenRequest) error {
	return nil
}

func (n *notifyCounter) UpdatePreferences(ctx context.Context, accountID uuid.UUID, req request_models.NotificationPreferencesRequest) (*db_models.NotificationPreferences, error) {
	return nil, nil
}

func (n *notifyCounter) GetPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreferences, error) {
	return nil, nil
}

func (n *notifyCounter) SendMealReminder(ctx context.Context, kind string) int {
	n.meals[kind]++
	return 0
}

func (n *notifyCounter) SendDailyRecap(ctx context.Context) int {
	n.recaps++
	return 0
}

func (n *notifyCounter) SendWeeklyReport(ctx context.Context) int {
	n.weekly++
	return 0
}

func (n *notifyCounter) NotifyTrialsExpiring(ctx context.Context, from, to time.Time) int {
	n.expiry++
	return 0
}

func (n *notifyCounter) NotifyTrialsEnded(ctx context.Context, accountIDs []uuid.UUID) int {
	return 0
}

type sweepCounter struct {
	services.EntitlementService
	sweeps int
}

func (s *sweepCounter) ExpireSweep(ctx context.Context) ([]uuid.UUID, error) {
	s.sweeps++
	return nil, nil
}

func newTestScheduler(now time.Time) (*Scheduler, *fakeClock, *notifyCounter, *sweepCounter) {
	clock := &fakeClock{now: now}
	notify := newNotifyCounter()
	sweep := &sweepCounter{}
	return NewScheduler(clock, sweep, notify), clock, notify, sweep
}

func TestLunchReminderFiresAtHalfPastNoon(t *testing.T) {
	// 2025-03-10 is a Monday.
	s, clock, notify, _ := newTestScheduler(time.Date(2025, 3, 10, 12, 30, 5, 0, time.UTC))

	s.RunDue(context.Background())
	assert.Equal(t, 1, notify.meals["lunch_reminder"])

	// Same minute, later tick: no re-fire.
	clock.now = clock.now.Add(20 * time.Second)
	s.RunDue(context.Background())
	assert.Equal(t, 1, notify.meals["lunch_reminder"])

	// Next day's lunch fires again.
	clock.now = clock.now.Add(24 * time.Hour)
	s.RunDue(context.Background())
	assert.Equal(t, 2, notify.meals["lunch_reminder"])
}

func TestNothingFiresOffSchedule(t *testing.T) {
	s, _, notify, sweep := newTestScheduler(time.Date(2025, 3, 10, 14, 17, 0, 0, time.UTC))

	s.RunDue(context.Background())

	assert.Empty(t, notify.meals)
	assert.Zero(t, notify.recaps)
	assert.Zero(t, notify.weekly)
	assert.Zero(t, notify.expiry)
	assert.Zero(t, sweep.sweeps)
}

func TestWeeklyReportOnlyOnSunday(t *testing.T) {
	// Monday 20:00: no weekly report.
	s, clock, notify, _ := newTestScheduler(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC))
	s.RunDue(context.Background())
	assert.Zero(t, notify.weekly)

	// Sunday 2025-03-16 20:00.
	clock.now = time.Date(2025, 3, 16, 20, 0, 0, 0, time.UTC)
	s.RunDue(context.Background())
	assert.Equal(t, 1, notify.weekly)
}

func TestTrialSweepFiresAtMidnightAndNoon(t *testing.T) {
	s, clock, _, sweep := newTestScheduler(time.Date(2025, 3, 10, 0, 0, 30, 0, time.UTC))

	s.RunDue(context.Background())
	assert.Equal(t, 1, sweep.sweeps)

	clock.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.RunDue(context.Background())
	assert.Equal(t, 2, sweep.sweeps)
}

func TestSchedulerRestart(t *testing.T) {
	s, _, _, _ := newTestScheduler(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	s.Start()
	s.Stop()
	s.Start()
	s.Stop()
}
