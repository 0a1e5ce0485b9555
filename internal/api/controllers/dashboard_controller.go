package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Get godoc
// @Summary Get the account dashboard
// @Description Children summaries, today's diary and usage counters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /dashboard [get]
func (d *DashboardController) Get(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resp, err := d.dashboardService.GetDashboard(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
