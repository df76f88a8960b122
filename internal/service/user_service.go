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

// UserService profile reads and edits, plus the admin volunteer listing.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	// ListVolunteers is the admin roster with verified hour totals.
	ListVolunteers(ctx context.Context, req *dto.VolunteerListRequest) ([]dto.VolunteerResponse, int64, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user failed", zap.Error(err))
		return nil, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user failed", zap.Error(err))
		return nil, err
	}

	// 1. name lives on the account row
	if req.Name != "" && req.Name != user.Name {
		user.Name = req.Name
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.logger.Error("update user failed", zap.Error(err))
			return nil, err
		}
	}

	// 2. the rest lives on the profile row; create it if the volunteer
	// never logged in since the profile table was introduced
	profile := user.Profile
	if profile == nil {
		profile = &model.Profile{UserID: user.UserID}
		if err := s.repo.Profile.CreateIfAbsent(ctx, profile); err != nil {
			s.logger.Error("create profile failed", zap.Error(err))
			return nil, err
		}
	}
	profile.Skills = req.Skills
	profile.Interests = req.Interests
	profile.Availability = req.Availability
	profile.Phone = req.Phone
	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.logger.Error("update profile failed", zap.Error(err))
		return nil, err
	}

	user.Profile = profile
	return toProfileResponse(user), nil
}

func (s *userService) ListVolunteers(ctx context.Context, req *dto.VolunteerListRequest) ([]dto.VolunteerResponse, int64, error) {
	users, total, err := s.repo.User.ListVolunteers(ctx, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list volunteers failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.VolunteerResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		item := dto.VolunteerResponse{
			ID:       u.UserID,
			Name:     u.Name,
			Email:    u.Email,
			JoinedAt: u.CreatedAt.Format("2006-01-02"),
		}
		if p := u.Profile; p != nil {
			item.Skills = p.Skills
			item.Interests = p.Interests
			item.Availability = p.Availability
			item.Phone = p.Phone
		}
		hours, err := s.repo.HourLog.SumVerifiedHours(ctx, u.UserID)
		if err != nil {
			s.logger.Warn("sum hours failed", zap.String("user_id", u.UserID), zap.Error(err))
		} else {
			item.TotalHours = hours
		}
		out = append(out, item)
	}
	return out, total, nil
}

func toProfileResponse(user *model.User) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
	if p := user.Profile; p != nil {
		resp.Skills = p.Skills
		resp.Interests = p.Interests
		resp.Availability = p.Availability
		resp.Phone = p.Phone
	}
	return resp
}
