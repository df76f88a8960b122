package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/service"
	"foodbridge/backend/pkg/response"
)

// RecommendationHandler AI advisor endpoints.
type RecommendationHandler struct {
	recSvc service.RecommendationService
}

// NewRecommendationHandler creates the RecommendationHandler.
func NewRecommendationHandler(recSvc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recSvc: recSvc}
}

// Recommend returns AI event suggestions for the caller. A null payload
// means the advisor had nothing usable; the frontend hides the panel.
// GET /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.recSvc.Recommend(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DraftNotification asks the advisor for reminder copy (admin).
// POST /api/v1/admin/notifications/draft
func (h *RecommendationHandler) DraftNotification(c *gin.Context) {
	var req dto.DraftNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.recSvc.DraftNotification(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 13001, "event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
