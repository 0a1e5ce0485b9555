package services

import (
	"context"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type FoodService interface {
	Search(ctx context.Context, query string, limit int) ([]db_models.Food, error)
	Seed(ctx context.Context, foods []db_models.Food) error
}

type foodService struct {
	foodRepo repositories.FoodRepository
	openAI   *utils.OpenAIClient
}

func NewFoodService(foodRepo repositories.FoodRepository, openAI *utils.OpenAIClient) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		openAI:   openAI,
	}
}

func (s *foodService) Search(ctx context.Context, query string, limit int) ([]db_models.Food, error) {
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	vec, err := s.openAI.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.SearchByEmbedding(ctx, vec, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return foods, nil
}

func (s *foodService) Seed(ctx context.Context, foods []db_models.Food) error {
	for i := range foods {
		if len(foods[i].Embedding.Slice()) == 0 {
			vec, err := s.openAI.GetEmbedding(ctx, foods[i].Name+" "+foods[i].Category)
			if err != nil {
				return err
			}
			foods[i].Embedding = vec
		}
		if err := s.foodRepo.Upsert(ctx, &foods[i]); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}
