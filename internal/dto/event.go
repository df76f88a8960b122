package dto

import "time"

// ── catalog responses ──

// EventResponse an active event annotated with its registration count.
type EventResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Capacity       *int       `json:"capacity,omitempty"`
	Status         string     `json:"status"`
	VolunteerCount int        `json:"volunteer_count"`
}

// EventDetailResponse event plus its shifts.
type EventDetailResponse struct {
	EventResponse
	Shifts []ShiftResponse `json:"shifts"`
}

// ShiftResponse a shift within an event.
type ShiftResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Capacity  *int      `json:"capacity,omitempty"`
}

// ── registration ──

// RegisterForEventRequest shift registration.
type RegisterForEventRequest struct {
	ShiftID string `json:"shift_id" binding:"required,uuid"`
}

// AssignmentResponse a volunteer's registration.
type AssignmentResponse struct {
	ID         string         `json:"id"`
	EventID    string         `json:"event_id"`
	ShiftID    string         `json:"shift_id"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	Event      *EventResponse `json:"event,omitempty"`
	Shift      *ShiftResponse `json:"shift,omitempty"`
}

// ── admin event management ──

// CreateEventRequest admin event creation.
type CreateEventRequest struct {
	Title       string     `json:"title"       binding:"required,min=2,max=200"`
	Description string     `json:"description" binding:"max=5000"`
	Location    string     `json:"location"    binding:"max=200"`
	StartDate   time.Time  `json:"start_date"  binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Capacity    *int       `json:"capacity"    binding:"omitempty,min=1"`
}

// UpdateEventRequest admin event edit.
type UpdateEventRequest struct {
	Title       string     `json:"title"       binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"    binding:"omitempty,max=200"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Capacity    *int       `json:"capacity"    binding:"omitempty,min=1"`
	Status      string     `json:"status"      binding:"omitempty,oneof=active inactive"`
}

// CreateShiftRequest admin shift creation.
type CreateShiftRequest struct {
	Title     string    `json:"title"      binding:"max=200"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"   binding:"required"`
	Capacity  *int      `json:"capacity"   binding:"omitempty,min=1"`
}
