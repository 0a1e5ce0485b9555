package services

import (
	"context"

	"github.com/google/uuid"

	"nutrikids/internal/models/response_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	accountRepo repositories.AccountRepository
	childRepo   repositories.ChildRepository
	diaryRepo   repositories.DiaryRepository
	clock       utils.Clock
}

func NewDashboardService(
	accountRepo repositories.AccountRepository,
	childRepo repositories.ChildRepository,
	diaryRepo repositories.DiaryRepository,
	clock utils.Clock,
) DashboardService {
	return &dashboardService{
		accountRepo: accountRepo,
		childRepo:   childRepo,
		diaryRepo:   diaryRepo,
		clock:       clock,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error) {
	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	children, err := s.childRepo.FindByParent(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := s.clock.Now()
	entriesToday, err := s.diaryRepo.CountForAccountSince(ctx, accountID, utils.StartOfDay(now))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.DashboardResponse{
		Children:          make([]response_models.ChildSummary, 0, len(children)),
		DiaryEntriesToday: entriesToday,
		ScansUsedToday:    account.ScansUsedToday,
		CoachUsedToday:    account.CoachMessagesUsedToday,
		IsPremium:         account.IsEntitled(now),
	}
	for _, child := range children {
		resp.Children = append(resp.Children, response_models.ChildSummary{
			ID:     child.ID.String(),
			Name:   child.Name,
			Age:    child.Age,
			Points: child.Points,
			Level:  child.Level,
			Badges: child.Badges,
		})
	}
	return resp, nil
}
