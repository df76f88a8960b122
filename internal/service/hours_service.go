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
)

var (
	ErrHourLogNotFound        = errors.New("hour log not found")
	ErrHourLogAlreadyVerified = errors.New("hour log already verified")
)

// HoursService hour logging and verification.
type HoursService interface {
	Log(ctx context.Context, volunteerID string, req *dto.LogHoursRequest) (*dto.HourLogResponse, error)
	ListMine(ctx context.Context, volunteerID string, req *dto.HourLogListRequest) ([]dto.HourLogResponse, int64, error)
	ListPending(ctx context.Context, req *dto.PaginationRequest) ([]dto.PendingHourLogResponse, int64, error)
	// Verify stamps an entry; only administrators reach this path.
	Verify(ctx context.Context, hourLogID, adminID string) (*dto.HourLogResponse, error)
}

type hoursService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHoursService creates the HoursService.
func NewHoursService(repo *repository.Repository, logger *zap.Logger) HoursService {
	return &hoursService{repo: repo, logger: logger}
}

func (s *hoursService) Log(ctx context.Context, volunteerID string, req *dto.LogHoursRequest) (*dto.HourLogResponse, error) {
	log := &model.HourLog{
		VolunteerID: volunteerID,
		LogDate:     req.Date,
		Hours:       req.Hours,
		Description: req.Description,
		// VerifiedAt stays nil: entries never count toward totals until an
		// administrator approves them
	}
	if err := s.repo.HourLog.Create(ctx, log); err != nil {
		s.logger.Error("create hour log failed", zap.Error(err))
		return nil, err
	}

	resp := toHourLogResponse(log)
	return &resp, nil
}

func (s *hoursService) ListMine(ctx context.Context, volunteerID string, req *dto.HourLogListRequest) ([]dto.HourLogResponse, int64, error) {
	logs, total, err := s.repo.HourLog.ListByVolunteerPaged(ctx, volunteerID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list hour logs failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.HourLogResponse, 0, len(logs))
	for i := range logs {
		resp = append(resp, toHourLogResponse(&logs[i]))
	}
	return resp, total, nil
}

func (s *hoursService) ListPending(ctx context.Context, req *dto.PaginationRequest) ([]dto.PendingHourLogResponse, int64, error) {
	logs, total, err := s.repo.HourLog.ListPending(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list pending hour logs failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.PendingHourLogResponse, 0, len(logs))
	for i := range logs {
		entry := dto.PendingHourLogResponse{
			HourLogResponse: toHourLogResponse(&logs[i]),
			VolunteerID:     logs[i].VolunteerID,
		}
		// volunteer name is display-only; a lookup failure leaves it blank
		if user, err := s.repo.User.GetByID(ctx, logs[i].VolunteerID); err == nil {
			entry.VolunteerName = user.Name
		}
		resp = append(resp, entry)
	}
	return resp, total, nil
}

func (s *hoursService) Verify(ctx context.Context, hourLogID, adminID string) (*dto.HourLogResponse, error) {
	log, err := s.repo.HourLog.GetByID(ctx, hourLogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHourLogNotFound
		}
		s.logger.Error("get hour log failed", zap.Error(err))
		return nil, err
	}
	if log.Verified() {
		return nil, ErrHourLogAlreadyVerified
	}

	now := time.Now()
	log.VerifiedAt = &now
	log.VerifiedBy = &adminID
	if err := s.repo.HourLog.Update(ctx, log); err != nil {
		s.logger.Error("verify hour log failed", zap.Error(err))
		return nil, err
	}

	resp := toHourLogResponse(log)
	return &resp, nil
}

func toHourLogResponse(log *model.HourLog) dto.HourLogResponse {
	return dto.HourLogResponse{
		ID:          log.HourLogID,
		Date:        log.LogDate,
		Hours:       log.Hours,
		Description: log.Description,
		VerifiedAt:  log.VerifiedAt,
		CreatedAt:   log.CreatedAt,
	}
}
