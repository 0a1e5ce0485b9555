package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/response_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type ReferralController struct {
	referralService services.ReferralService
}

func NewReferralController(referralService services.ReferralService) *ReferralController {
	return &ReferralController{referralService: referralService}
}

// GetMyReferral godoc
// @Summary Get the authenticated account's referral status
// @Description Returns the shareable code and the current reward ledger
// @Tags Referrals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /referrals/me [get]
func (r *ReferralController) GetMyReferral(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, err := r.referralService.GetOrCreateRecord(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	toNext := db_models.ReferralConversionsPerReward -
		len(record.SuccessfulInvites)%db_models.ReferralConversionsPerReward

	utils.RespondSuccess(c, response_models.ReferralResponse{
		Code:                    record.Code,
		PendingInvites:          len(record.PendingInvites),
		SuccessfulInvites:       len(record.SuccessfulInvites),
		RewardsClaimed:          record.RewardsClaimed,
		RewardsYearStart:        record.RewardsYearStart,
		LastRewardAt:            record.LastRewardAt,
		ConversionsToNextReward: toNext,
	}, "")
}
