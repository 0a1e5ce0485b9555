package mealplan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
)

var Module = fx.Provide(
	provideMealPlanRepo, provideMealPlanService)

func provideMealPlanRepo(db *gorm.DB) repositories.MealPlanRepository {
	return repositories.NewMealPlanRepository(db)
}

func provideMealPlanService(planRepo repositories.MealPlanRepository) services.MealPlanService {
	return services.NewMealPlanService(planRepo)
}
