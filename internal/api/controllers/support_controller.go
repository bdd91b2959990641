package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/request_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

type SupportController struct {
	supportService services.SupportServiceInterface
}

func NewSupportController(supportService services.SupportServiceInterface) *SupportController {
	return &SupportController{supportService: supportService}
}

func isStaff(c *gin.Context) bool {
	role, exists := c.Get("Role")
	if !exists {
		return false
	}
	r, ok := role.(string)
	return ok && r == "admin"
}

// CreateTicket godoc
// @Summary Open a support ticket
// @Tags Support
// @Accept json
// @Produce json
// @Param request body request_models.CreateTicketRequest true "Ticket payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /support/tickets [post]
func (s *SupportController) CreateTicket(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ticket, err := s.supportService.CreateTicket(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ticket, "Ticket created successfully")
}

// GetTicket godoc
// @Summary Fetch a ticket with its responses
// @Tags Support
// @Produce json
// @Param id path string true "Ticket id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /support/tickets/{id} [get]
func (s *SupportController) GetTicket(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	ticket, err := s.supportService.GetTicket(c.Request.Context(), id, isStaff(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ticket, "Ticket fetched successfully")
}

// ListTickets godoc
// @Summary List the caller's tickets
// @Tags Support
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /support/tickets [get]
func (s *SupportController) ListTickets(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tickets, err := s.supportService.ListTickets(c.Request.Context(), id, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tickets, "Tickets fetched successfully")
}

// AddResponse godoc
// @Summary Append a response to a ticket
// @Tags Support
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Param request body request_models.AddResponseRequest true "Response payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /support/tickets/{id}/responses [post]
func (s *SupportController) AddResponse(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.supportService.AddResponse(c.Request.Context(), id, isStaff(c), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Response added successfully")
}
