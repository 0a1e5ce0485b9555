package foods_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

var Module = fx.Provide(
	provideFoodRepo, provideFoodService)

func provideFoodRepo(db *gorm.DB) repositories.FoodRepository {
	return repositories.NewFoodRepository(db)
}

func provideFoodService(foodRepo repositories.FoodRepository, openAI *utils.OpenAIClient) services.FoodService {
	return services.NewFoodService(foodRepo, openAI)
}
