package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/service"
	"foodbridge/backend/pkg/response"
)

// EventHandler event catalog and shift registration endpoints.
type EventHandler struct {
	eventSvc        service.EventService
	registrationSvc service.RegistrationService
}

// NewEventHandler creates the EventHandler.
func NewEventHandler(eventSvc service.EventService, registrationSvc service.RegistrationService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc, registrationSvc: registrationSvc}
}

// List returns the active event catalog.
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventSvc.ListActive(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, events)
}

// Get returns one event and its shifts.
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 13001, "event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, event)
}

// Register signs the caller up for a shift.
// POST /api/v1/events/:id/register
func (h *EventHandler) Register(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterForEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.registrationSvc.Register(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.Created(c, result)
}

func (h *EventHandler) handleRegistrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14001, "shift not found")
	case errors.Is(err, service.ErrShiftEventMismatch):
		response.BadRequest(c, 14002, "shift does not belong to this event")
	case errors.Is(err, service.ErrShiftInPast):
		response.BadRequest(c, 14003, "shift has already started")
	case errors.Is(err, service.ErrShiftFull):
		response.Conflict(c, 14004, "shift is full")
	case errors.Is(err, service.ErrAlreadyRegistered):
		response.Conflict(c, 14005, "already registered for this shift")
	default:
		response.InternalError(c)
	}
}

// ListMine returns the caller's registrations.
// GET /api/v1/assignments
func (h *EventHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignments, err := h.registrationSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, assignments)
}

// ── admin catalog management ──

// Create adds an event (admin).
// POST /api/v1/admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, event)
}

// Update edits an event (admin).
// PUT /api/v1/admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 13001, "event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, event)
}

// CreateShift adds a shift to an event (admin).
// POST /api/v1/admin/events/:id/shifts
func (h *EventHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	shift, err := h.eventSvc.CreateShift(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 13001, "event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, shift)
}

// UpdateAssignmentStatus moves a registration forward (admin).
// PATCH /api/v1/admin/assignments/:id/status
func (h *EventHandler) UpdateAssignmentStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=registered checked_in completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.registrationSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.NotFound(c, 14006, "assignment not found")
		case errors.Is(err, service.ErrInvalidTransition):
			response.BadRequest(c, 14007, "status can only move forward")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
