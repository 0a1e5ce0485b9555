package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/push"
	"nutrikids/pkg/utils"
)

type pushText struct {
	Title string
	Body  string
}

// Localized copy for the scheduled notifications. Unknown languages fall
// back to Italian, the app's primary market.
var pushCopy = map[string]map[string]pushText{
	"lunch_reminder": {
		"it": {"È ora di pranzo! 🍝", "Registra il pranzo dei tuoi bambini nel diario."},
		"en": {"Lunchtime! 🍝", "Log your kids' lunch in the diary."},
		"es": {"¡Hora de comer! 🍝", "Registra el almuerzo de tus hijos en el diario."},
	},
	"dinner_reminder": {
		"it": {"È ora di cena! 🍲", "Non dimenticare di registrare la cena nel diario."},
		"en": {"Dinnertime! 🍲", "Don't forget to log dinner in the diary."},
		"es": {"¡Hora de cenar! 🍲", "No olvides registrar la cena en el diario."},
	},
	"daily_recap": {
		"it": {"Riepilogo di oggi 📊", "Guarda i progressi nutrizionali dei tuoi bambini."},
		"en": {"Today's recap 📊", "Check your kids' nutrition progress for today."},
		"es": {"Resumen de hoy 📊", "Mira el progreso nutricional de tus hijos."},
	},
	"weekly_report": {
		"it": {"Report settimanale 🏆", "La settimana è finita: scopri badge e livelli guadagnati!"},
		"en": {"Weekly report 🏆", "The week is over: see the badges and levels earned!"},
		"es": {"Informe semanal 🏆", "La semana terminó: ¡descubre las insignias y niveles ganados!"},
	},
	"trial_expiring": {
		"it": {"La prova sta per scadere ⏰", "Passa a Premium per non perdere l'accesso illimitato."},
		"en": {"Your trial is ending ⏰", "Upgrade to Premium to keep unlimited access."},
		"es": {"Tu prueba está por terminar ⏰", "Pasa a Premium para mantener el acceso ilimitado."},
	},
	"trial_ended": {
		"it": {"La prova è terminata", "Torna a Premium quando vuoi: i tuoi dati sono al sicuro."},
		"en": {"Your trial has ended", "Come back to Premium anytime: your data is safe."},
		"es": {"Tu prueba ha terminado", "Vuelve a Premium cuando quieras: tus datos están a salvo."},
	},
}

func textFor(kind, language string) pushText {
	texts := pushCopy[kind]
	if t, ok := texts[language]; ok {
		return t
	}
	return texts["it"]
}

type NotificationService interface {
	RegisterToken(ctx context.Context, accountID uuid.UUID, req request_models.RegisterPushTokenRequest) error
	UpdatePreferences(ctx context.Context, accountID uuid.UUID, req request_models.NotificationPreferencesRequest) (*db_models.NotificationPreferences, error)
	GetPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreferences, error)

	// Broadcast jobs, invoked by the scheduler. Per-device failures are
	// logged and skipped so one dead token cannot stall a run.
	SendMealReminder(ctx context.Context, kind string) int
	SendDailyRecap(ctx context.Context) int
	SendWeeklyReport(ctx context.Context) int
	NotifyTrialsExpiring(ctx context.Context, from, to time.Time) int
	NotifyTrialsEnded(ctx context.Context, accountIDs []uuid.UUID) int
}

type notificationService struct {
	tokenRepo   repositories.PushTokenRepository
	accountRepo repositories.AccountRepository
	sender      push.Sender
}

func NewNotificationService(
	tokenRepo repositories.PushTokenRepository,
	accountRepo repositories.AccountRepository,
	sender push.Sender,
) NotificationService {
	return &notificationService{
		tokenRepo:   tokenRepo,
		accountRepo: accountRepo,
		sender:      sender,
	}
}

func (s *notificationService) RegisterToken(ctx context.Context, accountID uuid.UUID, req request_models.RegisterPushTokenRequest) error {
	language := req.Language
	if language == "" {
		language = "it"
	}
	token := &db_models.PushToken{
		AccountID: accountID,
		Token:     req.Token,
		Language:  language,
	}
	if err := s.tokenRepo.Upsert(ctx, token); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *notificationService) UpdatePreferences(ctx context.Context, accountID uuid.UUID, req request_models.NotificationPreferencesRequest) (*db_models.NotificationPreferences, error) {
	prefs, err := s.GetPreferences(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Enabled != nil {
		prefs.Enabled = *req.Enabled
	}
	if req.MealReminders != nil {
		prefs.MealReminders = *req.MealReminders
	}
	if req.WeeklyReport != nil {
		prefs.WeeklyReport = *req.WeeklyReport
	}
	if err := s.tokenRepo.UpsertPreferences(ctx, prefs); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return prefs, nil
}

func (s *notificationService) GetPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreferences, error) {
	prefs, err := s.tokenRepo.FindPreferences(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prefs == nil {
		prefs = &db_models.NotificationPreferences{
			AccountID:     accountID,
			Enabled:       true,
			MealReminders: true,
			WeeklyReport:  true,
		}
	}
	return prefs, nil
}

func (s *notificationService) SendMealReminder(ctx context.Context, kind string) int {
	return s.broadcast(ctx, kind, func(prefs *db_models.NotificationPreferences) bool {
		return prefs.MealReminders
	})
}

func (s *notificationService) SendDailyRecap(ctx context.Context) int {
	return s.broadcast(ctx, "daily_recap", func(prefs *db_models.NotificationPreferences) bool {
		return true
	})
}

func (s *notificationService) SendWeeklyReport(ctx context.Context) int {
	return s.broadcast(ctx, "weekly_report", func(prefs *db_models.NotificationPreferences) bool {
		return prefs.WeeklyReport
	})
}

func (s *notificationService) NotifyTrialsExpiring(ctx context.Context, from, to time.Time) int {
	accounts, err := s.accountRepo.FindTrialsExpiringBetween(ctx, from, to)
	if err != nil {
		log.Printf("notify: listing expiring trials: %v", err)
		return 0
	}

	sent := 0
	for _, account := range accounts {
		token, err := s.tokenRepo.FindByAccount(ctx, account.ID)
		if err != nil || token == nil {
			continue
		}
		text := textFor("trial_expiring", token.Language)
		if err := s.sender.Send(ctx, token.Token, text.Title, text.Body, map[string]any{"type": "trial_expiring"}); err != nil {
			log.Printf("notify: push to %s: %v", account.ID, err)
			continue
		}
		sent++
	}
	return sent
}

func (s *notificationService) NotifyTrialsEnded(ctx context.Context, accountIDs []uuid.UUID) int {
	sent := 0
	for _, id := range accountIDs {
		token, err := s.tokenRepo.FindByAccount(ctx, id)
		if err != nil || token == nil {
			continue
		}
		text := textFor("trial_ended", token.Language)
		if err := s.sender.Send(ctx, token.Token, text.Title, text.Body, map[string]any{"type": "trial_ended"}); err != nil {
			log.Printf("notify: push to %s: %v", id, err)
			continue
		}
		sent++
	}
	return sent
}

func (s *notificationService) broadcast(ctx context.Context, kind string, wants func(*db_models.NotificationPreferences) bool) int {
	tokens, err := s.tokenRepo.ListAll(ctx)
	if err != nil {
		log.Printf("notify: listing push tokens: %v", err)
		return 0
	}

	sent := 0
	for _, token := range tokens {
		prefs, err := s.GetPreferences(ctx, token.AccountID)
		if err != nil || !prefs.Enabled || !wants(prefs) {
			continue
		}
		text := textFor(kind, token.Language)
		if err := s.sender.Send(ctx, token.Token, text.Title, text.Body, map[string]any{"type": kind}); err != nil {
			log.Printf("notify: push to %s: %v", token.AccountID, err)
			continue
		}
		sent++
	}
	return sent
}
