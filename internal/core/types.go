package core

import "time"

const (
	HawsaName    = "HawsaCore"
	HawsaVersion = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type PersonalityType string

const (
	PersonalityAnalytical PersonalityType = "ANALYTICAL"
	PersonalityCreative   PersonalityType = "CREATIVE"
	PersonalityPractical  PersonalityType = "PRACTICAL"
)

type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "BEGINNER"
	ExpertiseIntermediate ExpertiseLevel = "INTERMEDIATE"
	ExpertiseAdvanced     ExpertiseLevel = "ADVANCED"
)

type ContentType string

const (
	ContentText    ContentType = "TEXT"
	ContentBullets ContentType = "BULLETS"
	ContentCode    ContentType = "CODE"
)

// UserProfile is the behavioral classification inferred from a single
// message. There is exactly one row per user; every analysis replaces it.
type UserProfile struct {
	UserID                string          `json:"user_id"`
	Personality           PersonalityType `json:"personality"`
	Expertise             ExpertiseLevel  `json:"expertise"`
	TechnicalInterests    []string        `json:"interests"`
	ConfidenceScore       float64         `json:"confidence"`
	PreferredContentTypes []ContentType   `json:"preferred_content_types"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// Interaction is one immutable entry of the append-only conversation log.
type Interaction struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Note is a durable, importance-weighted fact about a user.
type Note struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	NoteType   string    `json:"note_type"`
	NoteText   string    `json:"note_text"`
	Importance float64   `json:"importance"`
	CreatedAt  time.Time `json:"created_at"`
}

type Recommendation struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
