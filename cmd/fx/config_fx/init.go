package config_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/config"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideClock)

func provideClock() utils.Clock {
	return utils.NewRealClock()
}
