package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	mem "nutrikids/pkg/memcache"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	referrals services.ReferralService,
	mailService services.MailService,
	resetTokens mem.ResetTokenStore,
	clock utils.Clock,
) services.AccountService {
	return services.NewAccountService(accountRepo, referrals, mailService, resetTokens, clock)
}
