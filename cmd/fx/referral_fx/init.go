package referral_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	provideReferralRepo, provideReferralService)

func provideReferralRepo(db *gorm.DB) repositories.ReferralRepository {
	return repositories.NewReferralRepository(db)
}

func provideReferralService(
	referralRepo repositories.ReferralRepository,
	accountRepo repositories.AccountRepository,
	entitlements services.EntitlementService,
	clock utils.Clock,
) services.ReferralService {
	return services.NewReferralService(referralRepo, accountRepo, entitlements, clock)
}
