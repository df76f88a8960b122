package repository

import (
	"context"

	"gorm.io/gorm"

	"foodbridge/backend/internal/model"
)

// EventRepository event catalog data access.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	// ListActive returns active events ascending by start date, capped at
	// limit, each annotated with its registration count.
	ListActive(ctx context.Context, limit int) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
}

// ShiftRepository shift data access.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Shift, error)
}

// ── Event implementation ──

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo creates the GORM-backed EventRepository.
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) ListActive(ctx context.Context, limit int) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Select("events.*, (SELECT COUNT(*) FROM assignments a WHERE a.event_id = events.event_id) AS volunteer_count").
		Where("status = ?", model.EventStatusActive).
		Order("start_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// ── Shift implementation ──

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo creates the GORM-backed ShiftRepository.
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) ListByEvent(ctx context.Context, eventID string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("start_time ASC").
		Find(&shifts).Error
	return shifts, err
}
