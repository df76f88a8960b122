package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"foodbridge/backend/internal/model"
	"foodbridge/backend/internal/repository"
	pkgerrors "foodbridge/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListVolunteers(_ context.Context, keyword string, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		if u.Role != model.RoleVolunteer {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(u.Name), strings.ToLower(keyword)) &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(keyword)) {
			continue
		}
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })

	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	profiles      map[string]*model.Profile // key: user_id
	createIfCalls int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (*model.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) CreateIfAbsent(_ context.Context, profile *model.Profile) error {
	m.createIfCalls++
	if _, ok := m.profiles[profile.UserID]; ok {
		return nil
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("event-%d", len(m.events)+1)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) ListActive(_ context.Context, limit int) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if e.Status == model.EventStatusActive {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	m.events[event.EventID] = event
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[string]*model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = fmt.Sprintf("shift-%d", len(m.shifts)+1)
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListByEvent(_ context.Context, eventID string) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.EventID == eventID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.Assignment
	createCalls int
	// forceDuplicate simulates a concurrent insert winning the race: the
	// pre-check misses but the unique index rejects the insert.
	forceDuplicate bool
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.Assignment)}
}

func pairKey(volunteerID, shiftID string) string {
	return volunteerID + ":" + shiftID
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	m.createCalls++
	if m.forceDuplicate {
		return pkgerrors.ErrDuplicateKey
	}
	for _, a := range m.assignments {
		if a.VolunteerID == assignment.VolunteerID && a.ShiftID == assignment.ShiftID {
			return pkgerrors.ErrDuplicateKey
		}
	}
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = fmt.Sprintf("assignment-%d", len(m.assignments)+1)
	}
	assignment.CreatedAt = time.Now()
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) GetByVolunteerAndShift(_ context.Context, volunteerID, shiftID string) (*model.Assignment, error) {
	for _, a := range m.assignments {
		if a.VolunteerID == volunteerID && a.ShiftID == shiftID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListByVolunteer(_ context.Context, volunteerID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.VolunteerID == volunteerID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockAssignmentRepo) CountByShift(_ context.Context, shiftID string) (int64, error) {
	var count int64
	for _, a := range m.assignments {
		if a.ShiftID == shiftID {
			count++
		}
	}
	return count, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, assignment *model.Assignment) error {
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

// ── Mock HourLogRepository ──

type mockHourLogRepo struct {
	logs map[string]*model.HourLog
}

func newMockHourLogRepo() *mockHourLogRepo {
	return &mockHourLogRepo{logs: make(map[string]*model.HourLog)}
}

func (m *mockHourLogRepo) Create(_ context.Context, log *model.HourLog) error {
	if log.HourLogID == "" {
		log.HourLogID = fmt.Sprintf("hourlog-%d", len(m.logs)+1)
	}
	log.CreatedAt = time.Now()
	m.logs[log.HourLogID] = log
	return nil
}

func (m *mockHourLogRepo) GetByID(_ context.Context, id string) (*model.HourLog, error) {
	if l, ok := m.logs[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHourLogRepo) listSorted(volunteerID string) []model.HourLog {
	var result []model.HourLog
	for _, l := range m.logs {
		if l.VolunteerID == volunteerID {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LogDate.After(result[j].LogDate)
	})
	return result
}

func (m *mockHourLogRepo) ListByVolunteer(_ context.Context, volunteerID string) ([]model.HourLog, error) {
	return m.listSorted(volunteerID), nil
}

func (m *mockHourLogRepo) ListByVolunteerPaged(_ context.Context, volunteerID string, offset, limit int) ([]model.HourLog, int64, error) {
	all := m.listSorted(volunteerID)
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockHourLogRepo) ListPending(_ context.Context, offset, limit int) ([]model.HourLog, int64, error) {
	var all []model.HourLog
	for _, l := range m.logs {
		if l.VerifiedAt == nil {
			all = append(all, *l)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockHourLogRepo) ListVerifiedBetween(_ context.Context, from, to time.Time) ([]model.HourLog, error) {
	var result []model.HourLog
	for _, l := range m.logs {
		if l.VerifiedAt == nil {
			continue
		}
		if l.LogDate.Before(from) || l.LogDate.After(to) {
			continue
		}
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LogDate.Before(result[j].LogDate)
	})
	return result, nil
}

func (m *mockHourLogRepo) SumVerifiedHours(_ context.Context, volunteerID string) (float64, error) {
	var sum float64
	for _, l := range m.logs {
		if l.VolunteerID == volunteerID && l.VerifiedAt != nil {
			sum += l.Hours
		}
	}
	return sum, nil
}

func (m *mockHourLogRepo) Update(_ context.Context, log *model.HourLog) error {
	m.logs[log.HourLogID] = log
	return nil
}

// ── aggregate helper ──

type mocks struct {
	user       *mockUserRepo
	profile    *mockProfileRepo
	event      *mockEventRepo
	shift      *mockShiftRepo
	assignment *mockAssignmentRepo
	hourLog    *mockHourLogRepo
}

func newMocks() (*repository.Repository, *mocks) {
	m := &mocks{
		user:       newMockUserRepo(),
		profile:    newMockProfileRepo(),
		event:      newMockEventRepo(),
		shift:      newMockShiftRepo(),
		assignment: newMockAssignmentRepo(),
		hourLog:    newMockHourLogRepo(),
	}
	repo := &repository.Repository{
		User:       m.user,
		Profile:    m.profile,
		Event:      m.event,
		Shift:      m.shift,
		Assignment: m.assignment,
		HourLog:    m.hourLog,
	}
	return repo, m
}

// ── Mock Completer ──

type mockCompleter struct {
	response string
	err      error
	prompts  []string
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}
