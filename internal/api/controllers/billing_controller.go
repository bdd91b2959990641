package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/request_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

type BillingController struct {
	planService    services.PlanServiceInterface
	paymentService services.PaymentService
}

func NewBillingController(planService services.PlanServiceInterface, paymentService services.PaymentService) *BillingController {
	return &BillingController{planService: planService, paymentService: paymentService}
}

// ListPlans godoc
// @Summary List available subscription plans
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (b *BillingController) ListPlans(c *gin.Context) {
	plans, err := b.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// CreateCheckout godoc
// @Summary Create a payOS checkout link for a plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/checkout [post]
func (b *BillingController) CreateCheckout(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := b.paymentService.CreateCheckoutForPlan(c.Request.Context(), id, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created successfully")
}

// HandleWebhook godoc
// @Summary payOS payment webhook
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /webhook/payos [post]
func (b *BillingController) HandleWebhook(c *gin.Context) {
	b.paymentService.HandleWebhook(c)
}
