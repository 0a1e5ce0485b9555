package request_models

type MealPlanDayRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snack     string `json:"snack"`
}

type CreateMealPlanRequest struct {
	ChildID   string               `json:"child_id"`
	Title     string               `json:"title" binding:"required"`
	WeekStart string               `json:"week_start" binding:"required"`
	Notes     string               `json:"notes"`
	Days      []MealPlanDayRequest `json:"days"`
}
