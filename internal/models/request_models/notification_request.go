package request_models

type RegisterPushTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Language string `json:"language"`
}

type NotificationPreferencesRequest struct {
	Enabled       *bool `json:"enabled"`
	MealReminders *bool `json:"meal_reminders"`
	WeeklyReport  *bool `json:"weekly_report"`
}
