package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/push"
)

var Module = fx.Provide(
	providePushTokenRepo, provideNotificationService)

func providePushTokenRepo(db *gorm.DB) repositories.PushTokenRepository {
	return repositories.NewPushTokenRepository(db)
}

func provideNotificationService(
	tokenRepo repositories.PushTokenRepository,
	accountRepo repositories.AccountRepository,
	sender push.Sender,
) services.NotificationService {
	return services.NewNotificationService(tokenRepo, accountRepo, sender)
}
