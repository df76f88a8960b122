package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/model"
)

func setupTestUserService() (UserService, *mocks) {
	repo, m := newMocks()
	return NewUserService(repo, zap.NewNop()), m
}

func TestGetProfile_JoinsAccountFields(t *testing.T) {
	svc, m := setupTestUserService()
	m.user.users["vol-1"] = &model.User{
		UserID: "vol-1",
		Name:   "Alex Rivera",
		Email:  "alex@example.com",
		Role:   model.RoleVolunteer,
		Profile: &model.Profile{
			UserID: "vol-1",
			Skills: "cooking",
			Phone:  "555-0101",
		},
	}

	profile, err := svc.GetProfile(context.Background(), "vol-1")
	if err != nil {
		t.Fatalf("GetProfile should succeed, got: %v", err)
	}
	if profile.Name != "Alex Rivera" || profile.Email != "alex@example.com" {
		t.Error("profile should carry the account name and email")
	}
	if profile.Skills != "cooking" || profile.Phone != "555-0101" {
		t.Error("profile should carry the profile fields")
	}
}

func TestGetProfile_MissingProfileRow(t *testing.T) {
	svc, m := setupTestUserService()
	m.user.users["vol-1"] = &model.User{UserID: "vol-1", Name: "Alex", Email: "alex@example.com"}

	profile, err := svc.GetProfile(context.Background(), "vol-1")
	if err != nil {
		t.Fatalf("GetProfile should succeed without a profile row, got: %v", err)
	}
	if profile.Skills != "" {
		t.Error("missing profile row should read as empty fields")
	}
}

func TestGetProfile_UserNotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.GetProfile(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestUpdateProfile_WritesBothRows(t *testing.T) {
	svc, m := setupTestUserService()
	m.user.users["vol-1"] = &model.User{
		UserID:  "vol-1",
		Name:    "Alex Rivera",
		Email:   "alex@example.com",
		Profile: &model.Profile{UserID: "vol-1"},
	}

	profile, err := svc.UpdateProfile(context.Background(), "vol-1", &dto.UpdateProfileRequest{
		Name:   "Alexandra Rivera",
		Skills: "cooking, driving",
	})
	if err != nil {
		t.Fatalf("UpdateProfile should succeed, got: %v", err)
	}
	if profile.Name != "Alexandra Rivera" {
		t.Errorf("name should update, got %q", profile.Name)
	}
	if m.user.users["vol-1"].Name != "Alexandra Rivera" {
		t.Error("name should persist on the account row")
	}
	if m.profile.profiles["vol-1"].Skills != "cooking, driving" {
		t.Error("skills should persist on the profile row")
	}
}

func TestUpdateProfile_CreatesMissingProfileRow(t *testing.T) {
	svc, m := setupTestUserService()
	m.user.users["vol-1"] = &model.User{UserID: "vol-1", Name: "Alex", Email: "alex@example.com"}

	_, err := svc.UpdateProfile(context.Background(), "vol-1", &dto.UpdateProfileRequest{
		Skills: "driving",
	})
	if err != nil {
		t.Fatalf("UpdateProfile should succeed, got: %v", err)
	}
	if p, ok := m.profile.profiles["vol-1"]; !ok || p.Skills != "driving" {
		t.Error("a missing profile row should be created on update")
	}
}

func TestListVolunteers_FiltersAndSumsHours(t *testing.T) {
	svc, m := setupTestUserService()
	m.user.users["vol-1"] = &model.User{
		UserID: "vol-1", Name: "Alex Rivera", Email: "alex@example.com",
		Role:      model.RoleVolunteer,
		BaseModel: model.BaseModel{CreatedAt: time.Now()},
	}
	m.user.users["admin-1"] = &model.User{
		UserID: "admin-1", Name: "Site Admin", Email: "admin@example.com",
		Role: model.RoleAdmin,
	}
	at := time.Now()
	m.hourLog.logs["h1"] = &model.HourLog{HourLogID: "h1", VolunteerID: "vol-1", Hours: 5, VerifiedAt: &at}
	m.hourLog.logs["h2"] = &model.HourLog{HourLogID: "h2", VolunteerID: "vol-1", Hours: 3}

	result, total, err := svc.ListVolunteers(context.Background(), &dto.VolunteerListRequest{})
	if err != nil {
		t.Fatalf("ListVolunteers should succeed, got: %v", err)
	}
	if total != 1 {
		t.Errorf("admins should be excluded, got total=%d", total)
	}
	if result[0].TotalHours != 5 {
		t.Errorf("only verified hours should sum, got %v", result[0].TotalHours)
	}
}

func TestListVolunteers_Keyword(t *testing.T) {
	svc, m := setupTestUserService()
	m.user.users["vol-1"] = &model.User{UserID: "vol-1", Name: "Alex Rivera", Email: "alex@example.com", Role: model.RoleVolunteer}
	m.user.users["vol-2"] = &model.User{UserID: "vol-2", Name: "Sam Chen", Email: "sam@example.com", Role: model.RoleVolunteer}

	result, _, err := svc.ListVolunteers(context.Background(), &dto.VolunteerListRequest{Keyword: "rivera"})
	if err != nil {
		t.Fatalf("ListVolunteers should succeed, got: %v", err)
	}
	if len(result) != 1 || result[0].Name != "Alex Rivera" {
		t.Errorf("keyword should match by name, got %d rows", len(result))
	}
}
