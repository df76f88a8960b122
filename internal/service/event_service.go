package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/model"
	"foodbridge/backend/internal/repository"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrShiftNotFound = errors.New("shift not found")
)

// catalogLimit caps the public event listing.
const catalogLimit = 20

// EventService event catalog reads and admin catalog management.
type EventService interface {
	// ListActive returns up to 20 active events ascending by start date,
	// each carrying its registration count (0 when none).
	ListActive(ctx context.Context) ([]dto.EventResponse, error)
	Get(ctx context.Context, eventID string) (*dto.EventDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	CreateShift(ctx context.Context, eventID string, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService creates the EventService.
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) ListActive(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.repo.Event.ListActive(ctx, catalogLimit)
	if err != nil {
		s.logger.Error("list active events failed", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, toEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *eventService) Get(ctx context.Context, eventID string) (*dto.EventDetailResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("get event failed", zap.Error(err))
		return nil, err
	}

	detail := &dto.EventDetailResponse{
		EventResponse: toEventResponse(event),
		Shifts:        make([]dto.ShiftResponse, 0, len(event.Shifts)),
	}
	for i := range event.Shifts {
		detail.Shifts = append(detail.Shifts, toShiftResponse(&event.Shifts[i]))
	}
	return detail, nil
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
		Status:      model.EventStatusActive,
	}
	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return nil, err
	}

	resp := toEventResponse(event)
	return &resp, nil
}

func (s *eventService) Update(ctx context.Context, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("get event failed", zap.Error(err))
		return nil, err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Capacity != nil {
		event.Capacity = req.Capacity
	}
	if req.Status != "" {
		event.Status = req.Status
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("update event failed", zap.Error(err))
		return nil, err
	}

	resp := toEventResponse(event)
	return &resp, nil
}

func (s *eventService) CreateShift(ctx context.Context, eventID string, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if _, err := s.repo.Event.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("get event failed", zap.Error(err))
		return nil, err
	}

	shift := &model.Shift{
		EventID:   eventID,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.Capacity,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, err
	}

	resp := toShiftResponse(shift)
	return &resp, nil
}

// ── mapping helpers ──

func toEventResponse(event *model.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:             event.EventID,
		Title:          event.Title,
		Description:    event.Description,
		Location:       event.Location,
		StartDate:      event.StartDate,
		EndDate:        event.EndDate,
		Capacity:       event.Capacity,
		Status:         event.Status,
		VolunteerCount: event.VolunteerCount,
	}
}

func toShiftResponse(shift *model.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:        shift.ShiftID,
		EventID:   shift.EventID,
		Title:     shift.Title,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Capacity:  shift.Capacity,
	}
}
