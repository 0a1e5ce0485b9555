package services

import (
	"context"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type ChildService interface {
	CreateChild(ctx context.Context, parentID uuid.UUID, req request_models.CreateChildRequest) (*db_models.ChildProfile, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]db_models.ChildProfile, error)
	GetChild(ctx context.Context, parentID, childID uuid.UUID) (*db_models.ChildProfile, error)
	UpdateChild(ctx context.Context, parentID, childID uuid.UUID, req request_models.UpdateChildRequest) (*db_models.ChildProfile, error)
	DeleteChild(ctx context.Context, parentID, childID uuid.UUID) error
}

type childService struct {
	childRepo repositories.ChildRepository
}

func NewChildService(childRepo repositories.ChildRepository) ChildService {
	return &childService{childRepo: childRepo}
}

func (s *childService) CreateChild(ctx context.Context, parentID uuid.UUID, req request_models.CreateChildRequest) (*db_models.ChildProfile, error) {
	child := &db_models.ChildProfile{
		ParentID:  parentID,
		Name:      req.Name,
		Age:       req.Age,
		Allergies: req.Allergies,
		Points:    0,
		Level:     1,
		Badges:    []string{},
	}
	if err := s.childRepo.Insert(ctx, child); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return child, nil
}

func (s *childService) ListChildren(ctx context.Context, parentID uuid.UUID) ([]db_models.ChildProfile, error) {
	children, err := s.childRepo.FindByParent(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return children, nil
}

func (s *childService) GetChild(ctx context.Context, parentID, childID uuid.UUID) (*db_models.ChildProfile, error) {
	child, err := s.childRepo.FindById(ctx, childID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil || child.ParentID != parentID {
		return nil, utils.ErrChildNotFound
	}
	return child, nil
}

func (s *childService) UpdateChild(ctx context.Context, parentID, childID uuid.UUID, req request_models.UpdateChildRequest) (*db_models.ChildProfile, error) {
	child, err := s.childRepo.FindById(ctx, childID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil || child.ParentID != parentID {
		return nil, utils.ErrChildNotFound
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.Age != nil {
		child.Age = *req.Age
	}
	if req.Allergies != nil {
		child.Allergies = *req.Allergies
	}

	if err := s.childRepo.Update(ctx, child); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return child, nil
}

func (s *childService) DeleteChild(ctx context.Context, parentID, childID uuid.UUID) error {
	child, err := s.childRepo.FindById(ctx, childID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if child == nil || child.ParentID != parentID {
		return utils.ErrChildNotFound
	}
	if err := s.childRepo.Delete(ctx, childID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
