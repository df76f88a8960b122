package model

import "time"

// HourLog a self-reported block of volunteer hours. Maps to hour_logs.
// Entries count toward dashboard totals only once an administrator sets
// VerifiedAt.
type HourLog struct {
	HourLogID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"hour_log_id"`
	VolunteerID string     `gorm:"type:uuid;not null"                             json:"volunteer_id"`
	LogDate     time.Time  `gorm:"type:date;not null"                             json:"log_date"`
	Hours       float64    `gorm:"type:numeric(5,2);not null"                     json:"hours"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	VerifiedBy  *string    `gorm:"type:uuid" json:"verified_by,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (HourLog) TableName() string { return "hour_logs" }

// Verified reports whether an administrator has approved the entry.
func (h *HourLog) Verified() bool { return h.VerifiedAt != nil }
