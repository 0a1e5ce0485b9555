package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/utils"
)

// AdminController manages the runtime-tunable app configuration. All of
// its routes sit behind the admin role middleware.
type AdminController struct {
	configService services.ConfigService
}

func NewAdminController(configService services.ConfigService) *AdminController {
	return &AdminController{configService: configService}
}

// GetConfig godoc
// @Summary Get the app configuration
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/config [get]
func (a *AdminController) GetConfig(c *gin.Context) {
	cfg, err := a.configService.Get(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cfg, "")
}

// UpdateConfig godoc
// @Summary Update the app configuration
// @Description Partial update; only the provided fields change
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AppConfigUpdateRequest true "Config payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/config [put]
func (a *AdminController) UpdateConfig(c *gin.Context) {
	var req request_models.AppConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cfg, err := a.configService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cfg, "Configuration updated")
}

// GetConfigValue godoc
// @Summary Get a single configuration value
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "Config key"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/config/{key} [get]
func (a *AdminController) GetConfigValue(c *gin.Context) {
	value, err := a.configService.GetValue(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"key": c.Param("key"), "value": value}, "")
}
