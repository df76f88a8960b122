package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodbridge/backend/internal/model"
	pkgerrors "foodbridge/backend/pkg/errors"
)

// AssignmentRepository registration data access.
type AssignmentRepository interface {
	// Create inserts a registration. A unique-index violation on
	// (volunteer_id, shift_id) is returned as pkgerrors.ErrDuplicateKey so
	// the caller can treat it as "already registered".
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	GetByVolunteerAndShift(ctx context.Context, volunteerID, shiftID string) (*model.Assignment, error)
	ListByVolunteer(ctx context.Context, volunteerID string) ([]model.Assignment, error)
	CountByShift(ctx context.Context, shiftID string) (int64, error)
	Update(ctx context.Context, assignment *model.Assignment) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates the GORM-backed AssignmentRepository.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	err := r.db.WithContext(ctx).Create(assignment).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkgerrors.ErrDuplicateKey
	}
	return err
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Shift").
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) GetByVolunteerAndShift(ctx context.Context, volunteerID, shiftID string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ? AND shift_id = ?", volunteerID, shiftID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) ListByVolunteer(ctx context.Context, volunteerID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Shift").
		Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) CountByShift(ctx context.Context, shiftID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("shift_id = ?", shiftID).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}
