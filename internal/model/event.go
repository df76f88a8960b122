package model

import "time"

// Event statuses.
const (
	EventStatusActive   = "active"
	EventStatusInactive = "inactive"
)

// Event table. Maps to events.
type Event struct {
	EventID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Title       string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description"`
	Location    string     `gorm:"type:varchar(200);not null;default:''"          json:"location"`
	StartDate   time.Time  `gorm:"not null"                                       json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	BaseModel

	Shifts []Shift `gorm:"foreignKey:EventID" json:"shifts,omitempty"`

	// VolunteerCount is populated by a correlated subquery on catalog reads;
	// it is not a column.
	VolunteerCount int `gorm:"->;-:migration" json:"volunteer_count"`
}

// TableName sets the table name.
func (Event) TableName() string { return "events" }

// Shift a bounded time sub-slot within an event. Maps to shifts.
type Shift struct {
	ShiftID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	EventID   string    `gorm:"type:uuid;not null"                             json:"event_id"`
	Title     string    `gorm:"type:varchar(200);not null;default:''"          json:"title"`
	StartTime time.Time `gorm:"not null"                                       json:"start_time"`
	EndTime   time.Time `gorm:"not null"                                       json:"end_time"`
	Capacity  *int      `json:"capacity,omitempty"`
	BaseModel

	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName sets the table name.
func (Shift) TableName() string { return "shifts" }
