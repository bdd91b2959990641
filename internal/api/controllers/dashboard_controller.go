package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/response_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func validInterval(interval string) bool {
	switch interval {
	case "", "day", "week", "month":
		return true
	}
	return false
}

// GetEarnings godoc
// @Summary Earnings report for the caller over a time range
// @Tags Dashboard
// @Produce json
// @Param start query string false "Range start (RFC3339)"
// @Param end query string false "Range end (RFC3339)"
// @Param last_days query int false "Shortcut: last N days ending now"
// @Param interval query string false "Bucket interval: day, week or month"
// @Param tz query string false "IANA timezone for bucketing"
// @Param currency query string false "Currency filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/earnings [get]
func (d *DashboardController) GetEarnings(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var rng response_models.TimeRange

	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start time, expected RFC3339")
			return
		}
		rng.Start = start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end time, expected RFC3339")
			return
		}
		rng.End = end
	}
	if raw := c.Query("last_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid last_days")
			return
		}
		rng.End = time.Now().UTC()
		rng.Start = rng.End.AddDate(0, 0, -days)
	}

	rng.Interval = c.Query("interval")
	if !validInterval(rng.Interval) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid interval, expected day, week or month")
		return
	}

	if tz := c.Query("tz"); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unknown timezone")
			return
		}
		rng.Timezone = tz
	}

	report, err := d.dashboardService.BuildEarningsReport(c.Request.Context(), id, rng, c.Query("currency"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Earnings report built successfully")
}
