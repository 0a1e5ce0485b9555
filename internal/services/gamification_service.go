package services

import (
	"context"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type AwardResult struct {
	ChildID   string   `json:"child_id"`
	Points    int      `json:"points"`
	Level     int      `json:"level"`
	LevelUp   bool     `json:"level_up"`
	NewBadges []string `json:"new_badges"`
}

type GamificationService interface {
	// AwardPoints adds points to a child profile, recomputes the level and
	// evaluates badge thresholds. Points, level and badges are persisted
	// as one update; NewBadges lists only the badges earned by this call.
	AwardPoints(ctx context.Context, childID uuid.UUID, points int) (*AwardResult, error)
}

type gamificationService struct {
	childRepo repositories.ChildRepository
}

func NewGamificationService(childRepo repositories.ChildRepository) GamificationService {
	return &gamificationService{childRepo: childRepo}
}

func (g *gamificationService) AwardPoints(ctx context.Context, childID uuid.UUID, points int) (*AwardResult, error) {
	if points <= 0 {
		return nil, utils.ErrInvalidPoints
	}

	var levelUp bool
	var newBadges []string
	child, err := g.childRepo.ApplyGamification(ctx, childID, func(c *db_models.ChildProfile) error {
		levelUp, newBadges = c.ApplyAward(points)
		return nil
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil {
		return nil, utils.ErrChildNotFound
	}

	return &AwardResult{
		ChildID:   child.ID.String(),
		Points:    child.Points,
		Level:     child.Level,
		LevelUp:   levelUp,
		NewBadges: newBadges,
	}, nil
}
