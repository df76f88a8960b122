package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/model"
)

func setupTestRegistrationService() (RegistrationService, *mocks) {
	repo, m := newMocks()
	return NewRegistrationService(repo, zap.NewNop()), m
}

func addShift(m *mocks, shiftID, eventID string, start time.Time, capacity *int) *model.Shift {
	shift := &model.Shift{
		ShiftID:   shiftID,
		EventID:   eventID,
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
		Capacity:  capacity,
	}
	m.shift.shifts[shiftID] = shift
	return shift
}

func intPtr(v int) *int { return &v }

func TestRegisterForEvent_Success(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-1", time.Now().Add(24*time.Hour), intPtr(10))

	result, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})

	if err != nil {
		t.Fatalf("Register should succeed, got: %v", err)
	}
	if result.Status != model.AssignmentStatusRegistered {
		t.Errorf("new assignments should be registered, got %s", result.Status)
	}
	if m.assignment.createCalls != 1 {
		t.Errorf("expected exactly 1 insert, got %d", m.assignment.createCalls)
	}
}

func TestRegister_ShiftNotFound(t *testing.T) {
	svc, m := setupTestRegistrationService()

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "missing",
	})

	if !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got: %v", err)
	}
	if m.assignment.createCalls != 0 {
		t.Error("a failed validation should never reach the insert")
	}
}

func TestRegister_ShiftBelongsToOtherEvent(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-2", time.Now().Add(24*time.Hour), nil)

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})

	if !errors.Is(err, ErrShiftEventMismatch) {
		t.Errorf("expected ErrShiftEventMismatch, got: %v", err)
	}
	if m.assignment.createCalls != 0 {
		t.Error("a failed validation should never reach the insert")
	}
}

func TestRegister_PastShift(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-1", time.Now().Add(-time.Hour), nil)

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})

	if !errors.Is(err, ErrShiftInPast) {
		t.Errorf("expected ErrShiftInPast, got: %v", err)
	}
}

func TestRegister_ShiftFull(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-1", time.Now().Add(24*time.Hour), intPtr(1))
	m.assignment.assignments["existing"] = &model.Assignment{
		AssignmentID: "existing",
		VolunteerID:  "vol-other",
		ShiftID:      "shift-1",
		EventID:      "event-1",
		Status:       model.AssignmentStatusRegistered,
	}

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})

	if !errors.Is(err, ErrShiftFull) {
		t.Errorf("expected ErrShiftFull, got: %v", err)
	}
}

func TestRegister_NoCapacityMeansUnlimited(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-1", time.Now().Add(24*time.Hour), nil)
	for i := 0; i < 50; i++ {
		a := &model.Assignment{
			AssignmentID: fmt.Sprintf("existing-%d", i),
			VolunteerID:  fmt.Sprintf("vol-other-%d", i),
			ShiftID:      "shift-1",
			EventID:      "event-1",
		}
		m.assignment.assignments[a.AssignmentID] = a
	}

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})
	if err != nil {
		t.Errorf("a shift without capacity should accept everyone, got: %v", err)
	}
}

func TestRegister_SequentialDuplicate(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-1", time.Now().Add(24*time.Hour), intPtr(10))

	if _, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	}); err != nil {
		t.Fatalf("first registration should succeed, got: %v", err)
	}

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got: %v", err)
	}
}

func TestRegister_ConcurrentDuplicateCaughtByIndex(t *testing.T) {
	svc, m := setupTestRegistrationService()
	addShift(m, "shift-1", "event-1", time.Now().Add(24*time.Hour), intPtr(10))
	// pre-check sees nothing, but the insert collides with a racing commit
	m.assignment.forceDuplicate = true

	_, err := svc.Register(context.Background(), "vol-1", "event-1", &dto.RegisterForEventRequest{
		ShiftID: "shift-1",
	})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("a unique-index violation should surface as ErrAlreadyRegistered, got: %v", err)
	}
}

func TestUpdateStatus_ForwardOnly(t *testing.T) {
	svc, m := setupTestRegistrationService()
	m.assignment.assignments["a-1"] = &model.Assignment{
		AssignmentID: "a-1",
		VolunteerID:  "vol-1",
		ShiftID:      "shift-1",
		EventID:      "event-1",
		Status:       model.AssignmentStatusCheckedIn,
	}

	result, err := svc.UpdateStatus(context.Background(), "a-1", model.AssignmentStatusCompleted)
	if err != nil {
		t.Fatalf("forward transition should succeed, got: %v", err)
	}
	if result.Status != model.AssignmentStatusCompleted {
		t.Errorf("expected completed, got %s", result.Status)
	}

	_, err = svc.UpdateStatus(context.Background(), "a-1", model.AssignmentStatusRegistered)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("backward transition should fail, got: %v", err)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := setupTestRegistrationService()

	_, err := svc.UpdateStatus(context.Background(), "a-1", "cancelled")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("unknown status should fail, got: %v", err)
	}
}

func TestListMine_Empty(t *testing.T) {
	svc, _ := setupTestRegistrationService()

	result, err := svc.ListMine(context.Background(), "vol-1")
	if err != nil {
		t.Fatalf("ListMine should succeed, got: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty list, got %d", len(result))
	}
}
