package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodbridge/backend/internal/ai"
	"foodbridge/backend/internal/dto"
	"foodbridge/backend/internal/model"
	"foodbridge/backend/internal/repository"
)

// RecommendationService the AI advisor. Strictly advisory: every failure
// mode (transport, HTTP, malformed JSON) collapses to a nil result, never an
// error that could block browsing or registration.
type RecommendationService interface {
	// Recommend returns ranked event suggestions for the volunteer, or nil
	// when the advisor has nothing usable to say.
	Recommend(ctx context.Context, volunteerID string) (*dto.RecommendationResponse, error)
	// DraftNotification asks the model for shift-reminder copy for an event.
	DraftNotification(ctx context.Context, req *dto.DraftNotificationRequest) (*dto.DraftNotificationResponse, error)
}

type recommendationService struct {
	repo      *repository.Repository
	completer ai.Completer
	logger    *zap.Logger
}

// NewRecommendationService creates the RecommendationService.
func NewRecommendationService(repo *repository.Repository, completer ai.Completer, logger *zap.Logger) RecommendationService {
	return &recommendationService{repo: repo, completer: completer, logger: logger}
}

// advisorPrompt is the instruction frame. The model must answer with JSON
// only; anything else is discarded by the parser.
const advisorPrompt = `You are a volunteer coordinator for a food bank. Given a volunteer profile and a list of upcoming events, rank the events by fit for this volunteer.

Respond with strict JSON only, no prose and no markdown fences, in exactly this shape:
{"recommendations":[{"eventId":"...","eventTitle":"...","matchScore":0,"reason":"..."}],"personalizedMessage":"..."}

matchScore is an integer from 0 to 100. reason is one short sentence a volunteer would find helpful. personalizedMessage is one warm sentence addressed to the volunteer by name.

VOLUNTEER PROFILE
%s

UPCOMING EVENTS
%s`

func (s *recommendationService) Recommend(ctx context.Context, volunteerID string) (*dto.RecommendationResponse, error) {
	// 1. gather inputs; a missing profile is fine, an empty catalog means
	// there is nothing to recommend
	user, err := s.repo.User.GetByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.Error(err))
		return nil, err
	}

	events, err := s.repo.Event.ListActive(ctx, catalogLimit)
	if err != nil {
		s.logger.Error("list active events failed", zap.Error(err))
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	// 2. ask the model; any advisor failure is a soft nil
	prompt := fmt.Sprintf(advisorPrompt, formatProfile(user), formatEvents(events))
	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("advisor call failed", zap.Error(err))
		return nil, nil
	}

	return parseAdvisorResponse(raw, events, s.logger), nil
}

func (s *recommendationService) DraftNotification(ctx context.Context, req *dto.DraftNotificationRequest) (*dto.DraftNotificationResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("get event failed", zap.Error(err))
		return nil, err
	}

	tone := req.Tone
	if tone == "" {
		tone = "friendly"
	}

	prompt := fmt.Sprintf(
		"Write a short %s reminder message (2-3 sentences, plain text, no subject line) for volunteers registered for this food bank event:\nTitle: %s\nDate: %s\nLocation: %s",
		tone, event.Title, event.StartDate.Format("Monday, January 2 2006 at 3:04 PM"), event.Location,
	)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("notification draft failed", zap.Error(err))
		return nil, nil
	}

	return &dto.DraftNotificationResponse{Message: strings.TrimSpace(text)}, nil
}

// ── prompt assembly and parsing ──

func formatProfile(user *model.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", user.Name)
	if p := user.Profile; p != nil {
		if p.Skills != "" {
			fmt.Fprintf(&b, "Skills: %s\n", p.Skills)
		}
		if p.Interests != "" {
			fmt.Fprintf(&b, "Interests: %s\n", p.Interests)
		}
		if p.Availability != "" {
			fmt.Fprintf(&b, "Availability: %s\n", p.Availability)
		}
	}
	return b.String()
}

func formatEvents(events []model.Event) string {
	var b strings.Builder
	for i := range events {
		e := &events[i]
		fmt.Fprintf(&b, "- id=%s title=%q date=%s location=%q",
			e.EventID, e.Title, e.StartDate.Format("2006-01-02 15:04"), e.Location)
		if e.Capacity != nil {
			fmt.Fprintf(&b, " capacity=%d", *e.Capacity)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "\n  %s", e.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// advisorWire mirrors the JSON contract given to the model.
type advisorWire struct {
	Recommendations []struct {
		EventID    string `json:"eventId"`
		EventTitle string `json:"eventTitle"`
		MatchScore int    `json:"matchScore"`
		Reason     string `json:"reason"`
	} `json:"recommendations"`
	PersonalizedMessage string `json:"personalizedMessage"`
}

// parseAdvisorResponse turns raw model output into the response DTO.
// Returns nil on malformed JSON. Recommendations for events not in the
// candidate list are dropped; scores are clamped to [0, 100].
func parseAdvisorResponse(raw string, events []model.Event, logger *zap.Logger) *dto.RecommendationResponse {
	var wire advisorWire
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &wire); err != nil {
		logger.Warn("advisor returned unparsable output", zap.Error(err))
		return nil
	}

	known := make(map[string]bool, len(events))
	for i := range events {
		known[events[i].EventID] = true
	}

	resp := &dto.RecommendationResponse{
		Recommendations:     make([]dto.EventRecommendation, 0, len(wire.Recommendations)),
		PersonalizedMessage: strings.TrimSpace(wire.PersonalizedMessage),
	}
	for _, rec := range wire.Recommendations {
		if !known[rec.EventID] {
			continue
		}
		score := rec.MatchScore
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		resp.Recommendations = append(resp.Recommendations, dto.EventRecommendation{
			EventID:    rec.EventID,
			EventTitle: rec.EventTitle,
			MatchScore: score,
			Reason:     rec.Reason,
		})
	}
	return resp
}
