package core

import "time"

// QueryResult is the structured output of one orchestrated request. The
// field names are part of the wire contract consumed by the HTTP wrapper
// and the UI and must stay stable.
type QueryResult struct {
	Success     bool           `json:"success"`
	UserID      string         `json:"user_id"`
	UserProfile ProfileSummary `json:"user_profile"`
	ContextUsed []ContextItem  `json:"context_used"`
	Response    Response       `json:"response"`
	Media       Media          `json:"media"`
	Analytics   Analytics      `json:"analytics"`
}

type ProfileSummary struct {
	Personality PersonalityType `json:"personality"`
	Expertise   ExpertiseLevel  `json:"expertise"`
	Interests   []string        `json:"interests"`
	Confidence  float64         `json:"confidence"`
}

// ContextItem is one past interaction as exposed in QueryResult.
type ContextItem struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}

type Response struct {
	Text                     string           `json:"text"`
	TechnicalRecommendations []Recommendation `json:"technical_recommendations"`
	PersonalizedNotes        []string         `json:"personalized_notes"`
}

// Media is a placeholder description standing in for a future richer
// media generation capability.
type Media struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type Analytics struct {
	ProcessingTimeSeconds float64       `json:"processing_time_seconds"`
	ContentTypesGenerated []ContentType `json:"content_types_generated"`
	InteractionQuality    string        `json:"interaction_quality"`
}
