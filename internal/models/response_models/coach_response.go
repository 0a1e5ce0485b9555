package response_models

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

type PhotoAnalysisResponse struct {
	FoodsDetected   []string      `json:"foods_detected"`
	NutritionalInfo NutritionInfo `json:"nutritional_info"`
	Suggestions     string        `json:"suggestions"`
	HealthScore     int           `json:"health_score"`
}
