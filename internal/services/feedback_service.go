package services

import (
	"context"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, accountID uuid.UUID, req request_models.CreateFeedbackRequest) error
	ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, accountID uuid.UUID, req request_models.CreateFeedbackRequest) error {
	feedback := &db_models.Feedback{
		AccountID: accountID,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	feedbacks, err := s.feedbackRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return feedbacks, nil
}
