package handler

import "foodbridge/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth           *AuthHandler
	User           *UserHandler
	Event          *EventHandler
	Dashboard      *DashboardHandler
	Hours          *HoursHandler
	Recommendation *RecommendationHandler
	Export         *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		User:           NewUserHandler(svc.User),
		Event:          NewEventHandler(svc.Event, svc.Registration),
		Dashboard:      NewDashboardHandler(svc.Dashboard),
		Hours:          NewHoursHandler(svc.Hours),
		Recommendation: NewRecommendationHandler(svc.Recommendation),
		Export:         NewExportHandler(svc.Export),
	}
}
