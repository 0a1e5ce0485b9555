package ai_fx

import (
	"go.uber.org/fx"

	"nutrikids/internal/config"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	provideOpenAI, provideGemini)

func provideOpenAI(cfg *config.Config) *utils.OpenAIClient {
	return utils.NewOpenAIClient(cfg.OpenAIKey)
}

func provideGemini(cfg *config.Config) *utils.GeminiClient {
	return utils.NewGeminiClient(cfg.GeminiKey, "gemini-1.5-flash")
}
