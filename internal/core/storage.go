package core

import "context"

type InteractionRepository interface {
	Add(ctx context.Context, userID, role, content string, tags []string, summary string) error
	RecentContext(ctx context.Context, userID string, limit int) ([]Interaction, error)
}

type NoteRepository interface {
	Add(ctx context.Context, userID, noteText, noteType string, importance float64) error
	// List returns note texts ordered by importance desc, recency desc.
	// An empty noteType means no type filter.
	List(ctx context.Context, userID, noteType string) ([]string, error)
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile UserProfile) error
	Get(ctx context.Context, userID string) (*UserProfile, error)
}
