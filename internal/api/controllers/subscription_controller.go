package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type SubscriptionController struct {
	entitlement services.EntitlementService
	referrals   services.ReferralService
}

func NewSubscriptionController(entitlement services.EntitlementService, referrals services.ReferralService) *SubscriptionController {
	return &SubscriptionController{
		entitlement: entitlement,
		referrals:   referrals,
	}
}

// Status godoc
// @Summary Get the premium window and today's usage
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions/status [get]
func (s *SubscriptionController) Status(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshot, err := s.entitlement.Status(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snapshot, "")
}

// StartTrial godoc
// @Summary Start the one-time free trial
// @Description Grants a 7-day premium window; usable once per account
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/trial [post]
func (s *SubscriptionController) StartTrial(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.entitlement.StartTrial(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// A trial is a premium transition too; it can convert a pending invite.
	s.referrals.OnBecamePremium(c.Request.Context(), accountID)

	utils.RespondSuccess(c, nil, "Trial started")
}
