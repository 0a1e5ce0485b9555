package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

type DiaryService interface {
	CreateEntry(ctx context.Context, accountID uuid.UUID, req request_models.CreateDiaryEntryRequest) (*db_models.DiaryEntry, error)
	ListEntries(ctx context.Context, accountID uuid.UUID, date string) ([]db_models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, accountID, entryID uuid.UUID) error
	FindSimilarMeals(ctx context.Context, accountID uuid.UUID, description string, limit int) ([]db_models.DiaryEntry, error)
}

type diaryService struct {
	diaryRepo    repositories.DiaryRepository
	gamification GamificationService
	openAI       *utils.OpenAIClient
}

func NewDiaryService(diaryRepo repositories.DiaryRepository, gamification GamificationService, openAI *utils.OpenAIClient) DiaryService {
	return &diaryService{
		diaryRepo:    diaryRepo,
		gamification: gamification,
		openAI:       openAI,
	}
}

func (s *diaryService) CreateEntry(ctx context.Context, accountID uuid.UUID, req request_models.CreateDiaryEntryRequest) (*db_models.DiaryEntry, error) {
	entry := &db_models.DiaryEntry{
		AccountID:   accountID,
		MealType:    db_models.MealType(req.MealType),
		Date:        req.Date,
		Description: req.Description,
		PhotoBase64: req.PhotoBase64,
	}

	if req.ChildID != "" {
		childID, err := uuid.Parse(req.ChildID)
		if err != nil {
			return nil, utils.ErrChildNotFound
		}
		entry.ChildID = &childID
	}

	if req.NutritionalInfo != nil {
		if raw, err := json.Marshal(req.NutritionalInfo); err == nil {
			entry.NutritionalInfo = raw
		}
	}

	// Description embedding powers similar-meal lookup; losing it only
	// degrades search, so a failure never blocks the write.
	if s.openAI != nil {
		if vec, err := s.openAI.GetEmbedding(ctx, req.Description); err == nil {
			entry.Embedding = vec
		} else {
			log.Printf("diary: embedding for entry failed: %v", err)
		}
	}

	if err := s.diaryRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Logging a meal earns the attached child 10 points.
	if entry.ChildID != nil {
		if _, err := s.gamification.AwardPoints(ctx, *entry.ChildID, 10); err != nil {
			log.Printf("diary: awarding points to child %s: %v", entry.ChildID, err)
		}
	}
	return entry, nil
}

func (s *diaryService) ListEntries(ctx context.Context, accountID uuid.UUID, date string) ([]db_models.DiaryEntry, error) {
	entries, err := s.diaryRepo.FindByAccount(ctx, accountID, date, 100)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *diaryService) DeleteEntry(ctx context.Context, accountID, entryID uuid.UUID) error {
	entry, err := s.diaryRepo.FindById(ctx, entryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if entry == nil || entry.AccountID != accountID {
		return utils.ErrEntryNotFound
	}
	if err := s.diaryRepo.Delete(ctx, entryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *diaryService) FindSimilarMeals(ctx context.Context, accountID uuid.UUID, description string, limit int) ([]db_models.DiaryEntry, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}
	if s.openAI == nil {
		return nil, utils.ErrDatabaseError
	}
	vec, err := s.openAI.GetEmbedding(ctx, description)
	if err != nil {
		return nil, err
	}
	entries, err := s.diaryRepo.FindSimilar(ctx, accountID, vec, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}
