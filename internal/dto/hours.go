package dto

import "time"

// LogHoursRequest a self-reported hours entry.
type LogHoursRequest struct {
	Date        time.Time `json:"date"        binding:"required"`
	Hours       float64   `json:"hours"       binding:"required,gt=0,lte=24"`
	Description string    `json:"description" binding:"max=2000"`
}

// HourLogResponse a stored hours entry.
type HourLogResponse struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Hours       float64    `json:"hours"`
	Description string     `json:"description"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// HourLogListRequest paging for hour logs.
type HourLogListRequest struct {
	PaginationRequest
}

// PendingHourLogResponse admin view of an unverified entry.
type PendingHourLogResponse struct {
	HourLogResponse
	VolunteerID   string `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`
}
