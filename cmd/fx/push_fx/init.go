package push_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/config"
	"nutrikids/pkg/push"
)

var Module = fx.Provide(provideSender)

func provideSender(cfg *config.Config) push.Sender {
	return push.NewExpoClient(cfg.ExpoPushURL)
}
