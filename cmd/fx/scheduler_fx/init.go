package scheduler_fx

import (
	"context"

	"go.uber.org/fx"

	"nutrikids/internal/scheduler"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideScheduler),
	fx.Invoke(registerLifecycle),
)

func provideScheduler(
	clock utils.Clock,
	entitlement services.EntitlementService,
	notify services.NotificationService,
) *scheduler.Scheduler {
	return scheduler.NewScheduler(clock, entitlement, notify)
}

func registerLifecycle(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
