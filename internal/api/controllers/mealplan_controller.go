package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type MealPlanController struct {
	mealPlanService services.MealPlanService
}

func NewMealPlanController(mealPlanService services.MealPlanService) *MealPlanController {
	return &MealPlanController{mealPlanService: mealPlanService}
}

// Create godoc
// @Summary Create a weekly meal plan
// @Tags MealPlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateMealPlanRequest true "Meal plan payload"
// @Success 201 {object} utils.APIResponse
// @Router /meal-plans [post]
func (m *MealPlanController) Create(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := m.mealPlanService.CreatePlan(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Meal plan created")
}

// List godoc
// @Summary List meal plans
// @Tags MealPlans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /meal-plans [get]
func (m *MealPlanController) List(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	plans, err := m.mealPlanService.ListPlans(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "")
}

// Get godoc
// @Summary Get a meal plan
// @Tags MealPlans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Router /meal-plans/{id} [get]
func (m *MealPlanController) Get(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := m.mealPlanService.GetPlan(c.Request.Context(), accountID, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "")
}

// Delete godoc
// @Summary Delete a meal plan
// @Tags MealPlans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Router /meal-plans/{id} [delete]
func (m *MealPlanController) Delete(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	if err := m.mealPlanService.DeletePlan(c.Request.Context(), accountID, planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meal plan deleted")
}
