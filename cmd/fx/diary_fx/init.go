package diary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	provideDiaryRepo, provideDiaryService)

func provideDiaryRepo(db *gorm.DB) repositories.DiaryRepository {
	return repositories.NewDiaryRepository(db)
}

func provideDiaryService(
	diaryRepo repositories.DiaryRepository,
	gamification services.GamificationService,
	openAI *utils.OpenAIClient,
) services.DiaryService {
	return services.NewDiaryService(diaryRepo, gamification, openAI)
}
