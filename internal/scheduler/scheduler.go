package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

// job fires when due(now) is true. A job fires at most once per minute;
// the runner tracks the last fired minute so a slow tick cannot double-run.
type job struct {
	name string
	due  func(now time.Time) bool
	run  func(ctx context.Context)
}

// Scheduler drives the recurring background work: meal reminders, the
// daily recap, the weekly report, trial-expiry pushes and the expired
// trial sweep. It is restartable; Stop then Start yields a fresh run loop.
type Scheduler struct {
	clock       utils.Clock
	entitlement services.EntitlementService
	notify      services.NotificationService

	mu      sync.Mutex
	cancel  context.CancelFunc
	jobs    []job
	lastRun map[string]time.Time
}

func NewScheduler(
	clock utils.Clock,
	entitlement services.EntitlementService,
	notify services.NotificationService,
) *Scheduler {
	s := &Scheduler{
		clock:       clock,
		entitlement: entitlement,
		notify:      notify,
		lastRun:     make(map[string]time.Time),
	}
	s.jobs = []job{
		{
			name: "lunch_reminder",
			due:  at(12, 30),
			run: func(ctx context.Context) {
				s.notify.SendMealReminder(ctx, "lunch_reminder")
			},
		},
		{
			name: "dinner_reminder",
			due:  at(19, 30),
			run: func(ctx context.Context) {
				s.notify.SendMealReminder(ctx, "dinner_reminder")
			},
		},
		{
			name: "daily_recap",
			due:  at(21, 0),
			run: func(ctx context.Context) {
				s.notify.SendDailyRecap(ctx)
			},
		},
		{
			name: "weekly_report",
			due: func(now time.Time) bool {
				return now.Weekday() == time.Sunday && at(20, 0)(now)
			},
			run: func(ctx context.Context) {
				s.notify.SendWeeklyReport(ctx)
			},
		},
		{
			name: "trial_expiring",
			due:  at(10, 0),
			run: func(ctx context.Context) {
				now := s.clock.Now()
				s.notify.NotifyTrialsExpiring(ctx, now, now.Add(24*time.Hour))
			},
		},
		{
			name: "expired_trial_sweep",
			due: func(now time.Time) bool {
				return at(0, 0)(now) || at(12, 0)(now)
			},
			run: func(ctx context.Context) {
				expired, err := s.entitlement.ExpireSweep(ctx)
				if err != nil {
					log.Printf("scheduler: trial sweep: %v", err)
					return
				}
				if len(expired) > 0 {
					log.Printf("scheduler: cleared %d expired trials", len(expired))
					s.notify.NotifyTrialsEnded(ctx, expired)
				}
			},
		},
	}
	return s
}

func at(hour, minute int) func(time.Time) bool {
	return func(now time.Time) bool {
		return now.Hour() == hour && now.Minute() == minute
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.loop(ctx)
	log.Printf("scheduler: started with %d jobs", len(s.jobs))
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	log.Println("scheduler: stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunDue(ctx)
		}
	}
}

// RunDue fires every job whose schedule matches the current minute.
// Exported so tests can drive the scheduler without the ticker.
func (s *Scheduler) RunDue(ctx context.Context) {
	now := s.clock.Now()
	minute := now.Truncate(time.Minute)

	for _, j := range s.jobs {
		if !j.due(now) {
			continue
		}
		s.mu.Lock()
		already := s.lastRun[j.name].Equal(minute)
		if !already {
			s.lastRun[j.name] = minute
		}
		s.mu.Unlock()
		if already {
			continue
		}
		j.run(ctx)
	}
}
