package entitlement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	provideEntitlementService, provideQuotaService, provideConfigRepo)

func provideConfigRepo(db *gorm.DB) repositories.ConfigRepository {
	return repositories.NewConfigRepository(db)
}

func provideEntitlementService(accountRepo repositories.AccountRepository, clock utils.Clock) services.EntitlementService {
	return services.NewEntitlementService(accountRepo, clock)
}

func provideQuotaService(
	accountRepo repositories.AccountRepository,
	configRepo repositories.ConfigRepository,
	clock utils.Clock,
) services.QuotaService {
	return services.NewQuotaService(accountRepo, configRepo, clock)
}
