package services

import (
	"context"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type MealPlanService interface {
	CreatePlan(ctx context.Context, accountID uuid.UUID, req request_models.CreateMealPlanRequest) (*db_models.MealPlan, error)
	ListPlans(ctx context.Context, accountID uuid.UUID) ([]db_models.MealPlan, error)
	GetPlan(ctx context.Context, accountID, planID uuid.UUID) (*db_models.MealPlan, error)
	DeletePlan(ctx context.Context, accountID, planID uuid.UUID) error
}

type mealPlanService struct {
	planRepo repositories.MealPlanRepository
}

func NewMealPlanService(planRepo repositories.MealPlanRepository) MealPlanService {
	return &mealPlanService{planRepo: planRepo}
}

func (s *mealPlanService) CreatePlan(ctx context.Context, accountID uuid.UUID, req request_models.CreateMealPlanRequest) (*db_models.MealPlan, error) {
	plan := &db_models.MealPlan{
		AccountID: accountID,
		Title:     req.Title,
		WeekStart: req.WeekStart,
		Notes:     req.Notes,
	}
	if req.ChildID != "" {
		childID, err := uuid.Parse(req.ChildID)
		if err != nil {
			return nil, utils.ErrChildNotFound
		}
		plan.ChildID = &childID
	}
	for _, day := range req.Days {
		plan.Days = append(plan.Days, db_models.MealPlanDay{
			Weekday:   day.Weekday,
			Breakfast: day.Breakfast,
			Lunch:     day.Lunch,
			Dinner:    day.Dinner,
			Snack:     day.Snack,
		})
	}

	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *mealPlanService) ListPlans(ctx context.Context, accountID uuid.UUID) ([]db_models.MealPlan, error) {
	plans, err := s.planRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *mealPlanService) GetPlan(ctx context.Context, accountID, planID uuid.UUID) (*db_models.MealPlan, error) {
	plan, err := s.planRepo.FindById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.AccountID != accountID {
		return nil, utils.ErrEntryNotFound
	}
	return plan, nil
}

func (s *mealPlanService) DeletePlan(ctx context.Context, accountID, planID uuid.UUID) error {
	plan, err := s.planRepo.FindById(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil || plan.AccountID != accountID {
		return utils.ErrEntryNotFound
	}
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
