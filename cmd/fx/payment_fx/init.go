package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/config"
	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	providePlanRepo, provideTransactionRepo, providePaymentService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func providePaymentService(
	planRepo repositories.PlanRepository,
	txnRepo repositories.TransactionRepository,
	entitlement services.EntitlementService,
	referrals services.ReferralService,
	cfg *config.Config,
	clock utils.Clock,
) (services.PaymentService, error) {
	return services.NewPaymentService(planRepo, txnRepo, entitlement, referrals, cfg, clock)
}
