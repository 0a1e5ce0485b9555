package coach_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(provideCoachService)

func provideCoachService(
	quota services.QuotaService,
	configRepo repositories.ConfigRepository,
	gamification services.GamificationService,
	openAI *utils.OpenAIClient,
	gemini *utils.GeminiClient,
) services.CoachService {
	return services.NewCoachService(quota, configRepo, gamification, openAI, gemini)
}
