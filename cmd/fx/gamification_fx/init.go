package gamification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
)

var Module = fx.Provide(
	provideChildRepo, provideChildService, provideGamificationService)

func provideChildRepo(db *gorm.DB) repositories.ChildRepository {
	return repositories.NewChildRepository(db)
}

func provideChildService(childRepo repositories.ChildRepository) services.ChildService {
	return services.NewChildService(childRepo)
}

func provideGamificationService(childRepo repositories.ChildRepository) services.GamificationService {
	return services.NewGamificationService(childRepo)
}
