package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payOSHQ/payos-lib-golang"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// ListPlans godoc
// @Summary List active subscription plans
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PaymentController) ListPlans(c *gin.Context) {
	plans, err := p.paymentService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "")
}

// CreateCheckout godoc
// @Summary Create a checkout link for a plan
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.paymentService.CreateCheckout(c.Request.Context(), accountID, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Checkout created")
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Settles the transaction and extends the premium window
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	var webhook payos.WebhookType
	if err := c.ShouldBindJSON(&webhook); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := p.paymentService.HandleWebhook(c.Request.Context(), webhook); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "ok")
}
