package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/model"
	"foodbridge/backend/internal/repository"
	pkgerrors "foodbridge/backend/pkg/errors"
)

var (
	ErrAlreadyRegistered  = errors.New("already registered for this shift")
	ErrShiftFull          = errors.New("shift has no remaining capacity")
	ErrShiftInPast        = errors.New("shift has already started")
	ErrShiftEventMismatch = errors.New("shift does not belong to this event")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrInvalidTransition  = errors.New("assignment status can only move forward")
)

// RegistrationService the shift registration flow.
type RegistrationService interface {
	// Register creates an assignment for (volunteer, shift). The duplicate
	// check runs twice: a friendly pre-check, then the unique index on
	// (volunteer_id, shift_id) as the authoritative backstop, so two
	// concurrent requests cannot both commit.
	Register(ctx context.Context, volunteerID, eventID string, req *dto.RegisterForEventRequest) (*dto.AssignmentResponse, error)
	ListMine(ctx context.Context, volunteerID string) ([]dto.AssignmentResponse, error)
	// UpdateStatus moves an assignment forward (registered → checked_in →
	// completed). Admin only; there is no transition back.
	UpdateStatus(ctx context.Context, assignmentID, status string) (*dto.AssignmentResponse, error)
}

type registrationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRegistrationService creates the RegistrationService.
func NewRegistrationService(repo *repository.Repository, logger *zap.Logger) RegistrationService {
	return &registrationService{repo: repo, logger: logger}
}

func (s *registrationService) Register(ctx context.Context, volunteerID, eventID string, req *dto.RegisterForEventRequest) (*dto.AssignmentResponse, error) {
	// 1. the shift must exist and belong to the event being registered for
	shift, err := s.repo.Shift.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("get shift failed", zap.Error(err))
		return nil, err
	}
	if shift.EventID != eventID {
		return nil, ErrShiftEventMismatch
	}
	if !shift.StartTime.After(time.Now()) {
		return nil, ErrShiftInPast
	}

	// 2. capacity check
	if shift.Capacity != nil {
		count, err := s.repo.Assignment.CountByShift(ctx, shift.ShiftID)
		if err != nil {
			s.logger.Error("count shift registrations failed", zap.Error(err))
			return nil, err
		}
		if count >= int64(*shift.Capacity) {
			return nil, ErrShiftFull
		}
	}

	// 3. duplicate pre-check (fast path for the sequential case)
	if _, err := s.repo.Assignment.GetByVolunteerAndShift(ctx, volunteerID, shift.ShiftID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check existing registration failed", zap.Error(err))
		return nil, err
	}

	// 4. insert; the unique index catches whatever raced past step 3
	assignment := &model.Assignment{
		VolunteerID: volunteerID,
		ShiftID:     shift.ShiftID,
		EventID:     eventID,
		Status:      model.AssignmentStatusRegistered,
	}
	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrAlreadyRegistered
		}
		s.logger.Error("create assignment failed", zap.Error(err))
		return nil, err
	}

	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

func (s *registrationService) ListMine(ctx context.Context, volunteerID string) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.Assignment.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, toAssignmentResponse(&assignments[i]))
	}
	return resp, nil
}

// statusRank orders the forward-only lifecycle.
var statusRank = map[string]int{
	model.AssignmentStatusRegistered: 0,
	model.AssignmentStatusCheckedIn:  1,
	model.AssignmentStatusCompleted:  2,
}

func (s *registrationService) UpdateStatus(ctx context.Context, assignmentID, status string) (*dto.AssignmentResponse, error) {
	newRank, ok := statusRank[status]
	if !ok {
		return nil, ErrInvalidTransition
	}

	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("get assignment failed", zap.Error(err))
		return nil, err
	}
	if newRank <= statusRank[assignment.Status] {
		return nil, ErrInvalidTransition
	}

	assignment.Status = status
	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("update assignment failed", zap.Error(err))
		return nil, err
	}

	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// ── mapping helpers ──

func toAssignmentResponse(a *model.Assignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:        a.AssignmentID,
		EventID:   a.EventID,
		ShiftID:   a.ShiftID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
	if a.Event != nil {
		event := toEventResponse(a.Event)
		resp.Event = &event
	}
	if a.Shift != nil {
		shift := toShiftResponse(a.Shift)
		resp.Shift = &shift
	}
	return resp
}
