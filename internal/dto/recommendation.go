package dto

// RecommendationResponse advisor output. Ephemeral: produced per request,
// never persisted. A null payload means the advisor is unavailable; callers
// must treat that as an empty state, not an error.
type RecommendationResponse struct {
	Recommendations     []EventRecommendation `json:"recommendations"`
	PersonalizedMessage string                `json:"personalized_message"`
}

// EventRecommendation one suggested event with a 0-100 match score.
type EventRecommendation struct {
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	MatchScore int    `json:"match_score"`
	Reason     string `json:"reason"`
}

// DraftNotificationRequest admin request for AI-drafted reminder copy.
type DraftNotificationRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
	Tone    string `json:"tone"     binding:"omitempty,oneof=friendly formal urgent"`
}

// DraftNotificationResponse the drafted copy.
type DraftNotificationResponse struct {
	Message string `json:"message"`
}
