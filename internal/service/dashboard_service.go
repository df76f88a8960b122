package service

import (
	"context"
	"math"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"foodbridge/backend/config"
	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/model"
	"foodbridge/backend/internal/repository"
)

const (
	recentHoursLimit = 5

	// fallback label for hour logs without a description
	defaultActivityLabel = "Volunteer Activity"

	hourStatusApproved = "Approved"
	hourStatusPending  = "Pending"
)

// DashboardService derives the volunteer dashboard from stored state.
type DashboardService interface {
	// GetSummary performs two reads (assignments with events, hour logs
	// newest-first) and derives every statistic from that snapshot; no
	// further backend calls happen during derivation.
	GetSummary(ctx context.Context, volunteerID string) (*dto.DashboardResponse, error)
	// CalendarFeed renders the volunteer's upcoming assignments as an
	// iCalendar document.
	CalendarFeed(ctx context.Context, volunteerID string) (string, error)
}

type dashboardService struct {
	hoursTarget float64
	repo        *repository.Repository
	logger      *zap.Logger
	now         func() time.Time // injectable for tests
}

// NewDashboardService creates the DashboardService.
func NewDashboardService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{
		hoursTarget: cfg.Dashboard.HoursTarget,
		repo:        repo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *dashboardService) GetSummary(ctx context.Context, volunteerID string) (*dto.DashboardResponse, error) {
	// ── fetch the snapshot ──

	assignments, err := s.repo.Assignment.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, err
	}

	logs, err := s.repo.HourLog.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		s.logger.Error("list hour logs failed", zap.Error(err))
		return nil, err
	}

	// ── derive, purely from the snapshot ──

	now := s.now()
	summary := &dto.DashboardResponse{
		HoursTarget:    s.hoursTarget,
		RecentHours:    make([]dto.RecentHourEntry, 0, recentHoursLimit),
		UpcomingEvents: make([]dto.UpcomingEventEntry, 0),
	}

	// hour totals: only verified entries count
	for i := range logs {
		log := &logs[i]
		if log.Verified() {
			summary.TotalHours += log.Hours
			if sameMonth(log.LogDate, now) {
				summary.HoursThisMonth += log.Hours
			}
		}
	}
	summary.TotalHours = round2(summary.TotalHours)
	summary.HoursThisMonth = round2(summary.HoursThisMonth)

	// recent hours: logs arrive newest-first, take the head
	for i := range logs {
		if i >= recentHoursLimit {
			break
		}
		summary.RecentHours = append(summary.RecentHours, toRecentHourEntry(&logs[i]))
	}

	// attendance counters and upcoming events
	for i := range assignments {
		a := &assignments[i]
		if a.Attended() {
			summary.EventsAttended++
			if sameMonth(a.CreatedAt, now) {
				summary.EventsThisMonth++
			}
		}
		if a.Event != nil && a.Event.StartDate.After(now) {
			summary.UpcomingEvents = append(summary.UpcomingEvents, dto.UpcomingEventEntry{
				ID:        a.EventID,
				Title:     a.Event.Title,
				StartDate: a.Event.StartDate,
				Location:  a.Event.Location,
				Status:    a.Status,
			})
		}
	}

	// progress toward the hour goal, clamped to [0, 100]
	summary.ProgressPercentage = math.Min(100, round2(summary.TotalHours/s.hoursTarget*100))

	return summary, nil
}

func (s *dashboardService) CalendarFeed(ctx context.Context, volunteerID string) (string, error) {
	assignments, err := s.repo.Assignment.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//FoodBridge//Volunteer Calendar//EN")

	now := s.now()
	for i := range assignments {
		a := &assignments[i]
		if a.Shift == nil || a.Event == nil || !a.Shift.StartTime.After(now) {
			continue
		}

		event := cal.AddEvent(a.AssignmentID)
		event.SetSummary(a.Event.Title)
		event.SetStartAt(a.Shift.StartTime)
		event.SetEndAt(a.Shift.EndTime)
		if a.Event.Location != "" {
			event.SetLocation(a.Event.Location)
		}
		if a.Event.Description != "" {
			event.SetDescription(a.Event.Description)
		}
		event.SetDtStampTime(now)
	}

	return cal.Serialize(), nil
}

// ── derivation helpers ──

func toRecentHourEntry(log *model.HourLog) dto.RecentHourEntry {
	activity := log.Description
	if activity == "" {
		activity = defaultActivityLabel
	}
	status := hourStatusPending
	if log.Verified() {
		status = hourStatusApproved
	}
	return dto.RecentHourEntry{
		Date:     log.LogDate,
		Activity: activity,
		Hours:    log.Hours,
		Status:   status,
	}
}

// sameMonth reports whether both instants fall in the same local calendar
// month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
