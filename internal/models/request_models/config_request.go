package request_models

type AppConfigUpdateRequest struct {
	PremiumMonthlyPrice  *float64 `json:"premium_monthly_price"`
	PremiumYearlyPrice   *float64 `json:"premium_yearly_price"`
	OpenAIModel          *string  `json:"openai_model"`
	VisionModel          *string  `json:"vision_model"`
	MaxFreeScans         *int     `json:"max_free_scans"`
	MaxFreeCoachMessages *int     `json:"max_free_coach_messages"`
}
