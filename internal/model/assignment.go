package model

// Assignment statuses. An assignment only ever moves forward:
// registered → checked_in → completed.
const (
	AssignmentStatusRegistered = "registered"
	AssignmentStatusCheckedIn  = "checked_in"
	AssignmentStatusCompleted  = "completed"
)

// Assignment links a volunteer to a shift. Maps to assignments.
// (volunteer_id, shift_id) carries a unique index so a concurrent double
// registration fails at insert rather than silently duplicating.
type Assignment struct {
	AssignmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"            json:"assignment_id"`
	VolunteerID  string `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_volunteer_shift" json:"volunteer_id"`
	ShiftID      string `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_volunteer_shift" json:"shift_id"`
	EventID      string `gorm:"type:uuid;not null"                                        json:"event_id"`
	Status       string `gorm:"type:varchar(20);not null;default:'registered'"            json:"status"`
	BaseModel

	Shift *Shift `gorm:"foreignKey:ShiftID;references:ShiftID" json:"shift,omitempty"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName sets the table name.
func (Assignment) TableName() string { return "assignments" }

// Attended reports whether the assignment counts as an attended event.
func (a *Assignment) Attended() bool {
	return a.Status == AssignmentStatusCheckedIn || a.Status == AssignmentStatusCompleted
}
