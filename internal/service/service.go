package service

import (
	"go.uber.org/zap"

	"foodbridge/backend/config"
	"foodbridge/backend/internal/ai"
	"foodbridge/backend/internal/repository"
	"foodbridge/backend/pkg/jwt"
	"foodbridge/backend/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth           AuthService
	User           UserService
	Event          EventService
	Registration   RegistrationService
	Dashboard      DashboardService
	Hours          HoursService
	Recommendation RecommendationService
	Export         ExportService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	completer ai.Completer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:           NewUserService(repo, logger),
		Event:          NewEventService(repo, logger),
		Registration:   NewRegistrationService(repo, logger),
		Dashboard:      NewDashboardService(cfg, repo, logger),
		Hours:          NewHoursService(repo, logger),
		Recommendation: NewRecommendationService(repo, completer, logger),
		Export:         NewExportService(repo, logger),
	}
}
