package mail_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/config"
	"nutrikids/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.MailService {
	return services.NewSMTPMailService(cfg)
}
