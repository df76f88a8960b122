package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/service"
	"foodbridge/backend/pkg/response"
)

// HoursHandler hour logging and verification endpoints.
type HoursHandler struct {
	hoursSvc service.HoursService
}

// NewHoursHandler creates the HoursHandler.
func NewHoursHandler(hoursSvc service.HoursService) *HoursHandler {
	return &HoursHandler{hoursSvc: hoursSvc}
}

// Log records a self-reported hours entry.
// POST /api/v1/hours
func (h *HoursHandler) Log(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.LogHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.hoursSvc.Log(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListMine returns the caller's hour logs.
// GET /api/v1/hours
func (h *HoursHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.HourLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	logs, total, err := h.hoursSvc.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, logs, total, req.GetPage(), req.GetPageSize())
}

// ListPending returns unverified entries (admin).
// GET /api/v1/admin/hours/pending
func (h *HoursHandler) ListPending(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	logs, total, err := h.hoursSvc.ListPending(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, logs, total, req.GetPage(), req.GetPageSize())
}

// Verify approves an entry (admin).
// POST /api/v1/admin/hours/:id/verify
func (h *HoursHandler) Verify(c *gin.Context) {
	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.hoursSvc.Verify(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHourLogNotFound):
			response.NotFound(c, 15001, "hour log not found")
		case errors.Is(err, service.ErrHourLogAlreadyVerified):
			response.Conflict(c, 15002, "hour log already verified")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
