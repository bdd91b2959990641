package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/request_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

// LifecycleController exposes the admin user-lifecycle RPC. The whole
// route group sits behind the JWT + admin-role middleware, so handlers
// never re-check privileges.
type LifecycleController struct {
	lifecycleService services.LifecycleServiceInterface
}

func NewLifecycleController(lifecycleService services.LifecycleServiceInterface) *LifecycleController {
	return &LifecycleController{
		lifecycleService: lifecycleService,
	}
}

// HandleLifecycleAction godoc
// @Summary Run a user lifecycle action
// @Description Soft-delete a user into an archive, restore an archive, or permanently delete it. Action is selected by the "action" field.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.LifecycleRequest true "Lifecycle action payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/lifecycle [post]
func (l *LifecycleController) HandleLifecycleAction(c *gin.Context) {
	var req request_models.LifecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	switch req.Action {
	case "delete":
		if req.UserID == "" {
			utils.RespondError(c, http.StatusBadRequest, "userId is required for delete")
			return
		}
		resp, err := l.lifecycleService.DeleteUser(c.Request.Context(), caller, req.UserID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, resp, "User deleted")

	case "restore":
		if req.DeletedUserID == "" {
			utils.RespondError(c, http.StatusBadRequest, "deletedUserId is required for restore")
			return
		}
		resp, err := l.lifecycleService.RestoreUser(c.Request.Context(), caller, req.DeletedUserID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, resp, "User restored")

	case "permanent_delete":
		if req.DeletedUserID == "" {
			utils.RespondError(c, http.StatusBadRequest, "deletedUserId is required for permanent_delete")
			return
		}
		resp, err := l.lifecycleService.PurgeUser(c.Request.Context(), req.DeletedUserID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, resp, "User permanently deleted")

	default:
		utils.RespondError(c, http.StatusBadRequest, "action must be one of: delete, restore, permanent_delete")
	}
}

// ListDeletedUsers godoc
// @Summary List deleted-user archives
// @Tags Admin
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/deleted [get]
func (l *LifecycleController) ListDeletedUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	archives, err := l.lifecycleService.ListDeletedUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, archives, "Deleted users fetched successfully")
}
