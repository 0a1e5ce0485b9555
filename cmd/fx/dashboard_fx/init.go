package dashboard_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(provideDashboardService, provideConfigService)

func provideDashboardService(
	accountRepo repositories.AccountRepository,
	childRepo repositories.ChildRepository,
	diaryRepo repositories.DiaryRepository,
	clock utils.Clock,
) services.DashboardService {
	return services.NewDashboardService(accountRepo, childRepo, diaryRepo, clock)
}

func provideConfigService(configRepo repositories.ConfigRepository) services.ConfigService {
	return services.NewConfigService(configRepo)
}
