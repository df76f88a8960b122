package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User       UserRepository
	Profile    ProfileRepository
	Event      EventRepository
	Shift      ShiftRepository
	Assignment AssignmentRepository
	HourLog    HourLogRepository
}

// NewRepository builds the aggregate over a shared gorm.DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Profile:    NewProfileRepo(db),
		Event:      NewEventRepo(db),
		Shift:      NewShiftRepo(db),
		Assignment: NewAssignmentRepo(db),
		HourLog:    NewHourLogRepo(db),
	}
}
