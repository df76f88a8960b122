package dto

import "time"

// DashboardResponse derived volunteer statistics. Recomputed on every load,
// never persisted.
type DashboardResponse struct {
	TotalHours         float64                  `json:"total_hours"`
	HoursThisMonth     float64                  `json:"hours_this_month"`
	EventsAttended     int                      `json:"events_attended"`
	EventsThisMonth    int                      `json:"events_this_month"`
	ProgressPercentage float64                  `json:"progress_percentage"`
	HoursTarget        float64                  `json:"hours_target"`
	RecentHours        []RecentHourEntry        `json:"recent_hours"`
	UpcomingEvents     []UpcomingEventEntry     `json:"upcoming_events"`
}

// RecentHourEntry one row of the recent-hours list.
type RecentHourEntry struct {
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
	Hours    float64   `json:"hours"`
	Status   string    `json:"status"` // "Approved" | "Pending"
}

// UpcomingEventEntry one row of the upcoming-events list.
type UpcomingEventEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
}
