package request_models

type CreateDiaryEntryRequest struct {
	ChildID         string         `json:"child_id"`
	MealType        string         `json:"meal_type" binding:"required,oneof=colazione pranzo cena snack"`
	Description     string         `json:"description" binding:"required"`
	Date            string         `json:"date" binding:"required"`
	PhotoBase64     string         `json:"photo_base64"`
	NutritionalInfo map[string]any `json:"nutritional_info"`
}

type SimilarMealsRequest struct {
	Description string `json:"description" binding:"required"`
	Limit       int    `json:"limit"`
}
