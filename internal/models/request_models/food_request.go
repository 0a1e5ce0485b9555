package request_models

type SeedFoodRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`

	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

type SeedFoodsRequest struct {
	Foods []SeedFoodRequest `json:"foods" binding:"required,min=1,dive"`
}
