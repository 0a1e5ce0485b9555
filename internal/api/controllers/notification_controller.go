package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationService
}

func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// RegisterToken godoc
// @Summary Register a device push token
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.RegisterPushTokenRequest true "Token payload"
// @Success 200 {object} utils.APIResponse
// @Router /notifications/token [post]
func (n *NotificationController) RegisterToken(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := n.notificationService.RegisterToken(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Push token registered")
}

// GetPreferences godoc
// @Summary Get notification preferences
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /notifications/preferences [get]
func (n *NotificationController) GetPreferences(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prefs, err := n.notificationService.GetPreferences(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "")
}

// UpdatePreferences godoc
// @Summary Update notification preferences
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.NotificationPreferencesRequest true "Preferences payload"
// @Success 200 {object} utils.APIResponse
// @Router /notifications/preferences [put]
func (n *NotificationController) UpdatePreferences(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.NotificationPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	prefs, err := n.notificationService.UpdatePreferences(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences updated")
}
