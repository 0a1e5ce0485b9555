package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nutrikids/internal/repositories"
	"nutrikids/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepository) services.FeedbackService {
	return services.NewFeedbackService(feedbackRepo)
}
