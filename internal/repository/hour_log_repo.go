package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"foodbridge/backend/internal/model"
)

// HourLogRepository hour-log data access.
type HourLogRepository interface {
	Create(ctx context.Context, log *model.HourLog) error
	GetByID(ctx context.Context, id string) (*model.HourLog, error)
	// ListByVolunteer returns every log for the volunteer, newest first.
	ListByVolunteer(ctx context.Context, volunteerID string) ([]model.HourLog, error)
	ListByVolunteerPaged(ctx context.Context, volunteerID string, offset, limit int) ([]model.HourLog, int64, error)
	ListPending(ctx context.Context, offset, limit int) ([]model.HourLog, int64, error)
	ListVerifiedBetween(ctx context.Context, from, to time.Time) ([]model.HourLog, error)
	SumVerifiedHours(ctx context.Context, volunteerID string) (float64, error)
	Update(ctx context.Context, log *model.HourLog) error
}

type hourLogRepo struct {
	db *gorm.DB
}

// NewHourLogRepo creates the GORM-backed HourLogRepository.
func NewHourLogRepo(db *gorm.DB) HourLogRepository {
	return &hourLogRepo{db: db}
}

func (r *hourLogRepo) Create(ctx context.Context, log *model.HourLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *hourLogRepo) GetByID(ctx context.Context, id string) (*model.HourLog, error) {
	var log model.HourLog
	err := r.db.WithContext(ctx).
		Where("hour_log_id = ?", id).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *hourLogRepo) ListByVolunteer(ctx context.Context, volunteerID string) ([]model.HourLog, error) {
	var logs []model.HourLog
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("log_date DESC").
		Find(&logs).Error
	return logs, err
}

func (r *hourLogRepo) ListByVolunteerPaged(ctx context.Context, volunteerID string, offset, limit int) ([]model.HourLog, int64, error) {
	var logs []model.HourLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.HourLog{}).
		Where("volunteer_id = ?", volunteerID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("log_date DESC").
		Find(&logs).Error
	return logs, total, err
}

func (r *hourLogRepo) ListPending(ctx context.Context, offset, limit int) ([]model.HourLog, int64, error) {
	var logs []model.HourLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.HourLog{}).
		Where("verified_at IS NULL")

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, total, err
}

func (r *hourLogRepo) ListVerifiedBetween(ctx context.Context, from, to time.Time) ([]model.HourLog, error) {
	var logs []model.HourLog
	err := r.db.WithContext(ctx).
		Where("verified_at IS NOT NULL AND log_date >= ? AND log_date <= ?", from, to).
		Order("log_date ASC").
		Find(&logs).Error
	return logs, err
}

func (r *hourLogRepo) SumVerifiedHours(ctx context.Context, volunteerID string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.HourLog{}).
		Where("volunteer_id = ? AND verified_at IS NOT NULL", volunteerID).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *hourLogRepo) Update(ctx context.Context, log *model.HourLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}
