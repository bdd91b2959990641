package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/request_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{expenseService: expenseService}
}

// CreateExpense godoc
// @Summary Record a transportation expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.CreateExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [post]
func (e *ExpenseController) CreateExpense(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.CreateExpense(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense recorded successfully")
}

// ListExpenses godoc
// @Summary List the caller's expenses
// @Tags Expenses
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [get]
func (e *ExpenseController) ListExpenses(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), id, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	if err := e.expenseService.DeleteExpense(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted successfully")
}
