package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodbridge/backend/internal/service"
	"foodbridge/backend/pkg/response"
)

// DashboardHandler volunteer dashboard endpoints.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler creates the DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetSummary returns the derived dashboard statistics.
// GET /api/v1/dashboard
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardSvc.GetSummary(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// CalendarFeed returns the caller's upcoming shifts as iCalendar.
// GET /api/v1/dashboard/calendar.ics
func (h *DashboardHandler) CalendarFeed(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.dashboardSvc.CalendarFeed(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="foodbridge.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
