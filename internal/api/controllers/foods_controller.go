package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

type FoodsController struct {
	foodService services.FoodService
}

func NewFoodsController(foodService services.FoodService) *FoodsController {
	return &FoodsController{foodService: foodService}
}

// Search godoc
// @Summary Search the food catalog
// @Description Semantic search over the catalog by embedding similarity
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Param limit query int false "Max results"
// @Success 200 {object} utils.APIResponse
// @Router /foods/search [get]
func (f *FoodsController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing query")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	foods, err := f.foodService.Search(c.Request.Context(), query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, foods, "")
}

// Seed godoc
// @Summary Upsert catalog entries
// @Description Admin bulk load; missing embeddings are computed on insert
// @Tags Foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SeedFoodsRequest true "Catalog entries"
// @Success 200 {object} utils.APIResponse
// @Router /admin/foods/seed [post]
func (f *FoodsController) Seed(c *gin.Context) {
	var req request_models.SeedFoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	foods := make([]db_models.Food, 0, len(req.Foods))
	for _, item := range req.Foods {
		foods = append(foods, db_models.Food{
			Name:     item.Name,
			Category: item.Category,
			Tags:     item.Tags,
			Calories: item.Calories,
			Proteins: item.Proteins,
			Carbs:    item.Carbs,
			Fats:     item.Fats,
			Fiber:    item.Fiber,
		})
	}

	if err := f.foodService.Seed(c.Request.Context(), foods); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"seeded": len(foods)}, "Catalog updated")
}
