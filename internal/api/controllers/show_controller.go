package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/request_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

type ShowController struct {
	showService services.ShowServiceInterface
}

func NewShowController(showService services.ShowServiceInterface) *ShowController {
	return &ShowController{showService: showService}
}

// CreateShow godoc
// @Summary Create a show
// @Tags Shows
// @Accept json
// @Produce json
// @Param request body request_models.CreateShowRequest true "Show payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shows [post]
func (s *ShowController) CreateShow(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	show, err := s.showService.CreateShow(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, show, "Show created successfully")
}

// GetShow godoc
// @Summary Get one show
// @Tags Shows
// @Produce json
// @Param id path string true "Show id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shows/{id} [get]
func (s *ShowController) GetShow(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	show, err := s.showService.GetShow(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, show, "Show fetched successfully")
}

// ListShows godoc
// @Summary List the caller's shows
// @Tags Shows
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shows [get]
func (s *ShowController) ListShows(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	shows, err := s.showService.ListShows(c.Request.Context(), id, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shows, "Shows fetched successfully")
}

// UpdateShow godoc
// @Summary Update a show
// @Tags Shows
// @Accept json
// @Produce json
// @Param id path string true "Show id"
// @Param request body request_models.UpdateShowRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shows/{id} [patch]
func (s *ShowController) UpdateShow(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.showService.UpdateShow(c.Request.Context(), id, c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Show updated successfully")
}

// DeleteShow godoc
// @Summary Delete a show
// @Tags Shows
// @Produce json
// @Param id path string true "Show id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shows/{id} [delete]
func (s *ShowController) DeleteShow(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	if err := s.showService.DeleteShow(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Show deleted successfully")
}
