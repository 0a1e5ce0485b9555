package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type CoachController struct {
	coachService services.CoachService
}

func NewCoachController(coachService services.CoachService) *CoachController {
	return &CoachController{coachService: coachService}
}

// Chat godoc
// @Summary Chat with the nutrition coach
// @Description Counts against the daily free-tier message quota
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /coach/chat [post]
func (cc *CoachController) Chat(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := cc.coachService.Chat(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// AnalyzePhoto godoc
// @Summary Analyze a meal photo
// @Description Counts against the daily free-tier scan quota
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.PhotoAnalysisRequest true "Photo payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /coach/analyze-photo [post]
func (cc *CoachController) AnalyzePhoto(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.PhotoAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := cc.coachService.AnalyzePhoto(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
