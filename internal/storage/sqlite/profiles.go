package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hawsadev/hawsa/internal/core"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

// Upsert replaces the stored profile for the user; no history is kept.
func (r *ProfilesRepo) Upsert(ctx context.Context, profile core.UserProfile) error {
	interestsJSON, err := json.Marshal(profile.TechnicalInterests)
	if err != nil {
		return fmt.Errorf("failed to marshal interests: %w", err)
	}

	query := `
		INSERT INTO user_profiles (user_id, personality, expertise, interests, confidence, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			personality = excluded.personality,
			expertise = excluded.expertise,
			interests = excluded.interests,
			confidence = excluded.confidence,
			updated_at = CURRENT_TIMESTAMP`

	_, err = r.db.ExecContext(ctx, query,
		profile.UserID,
		string(profile.Personality),
		string(profile.Expertise),
		string(interestsJSON),
		profile.ConfidenceScore,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// Get returns the stored profile, or nil when the user has none yet.
func (r *ProfilesRepo) Get(ctx context.Context, userID string) (*core.UserProfile, error) {
	query := `SELECT personality, expertise, interests, confidence, updated_at FROM user_profiles WHERE user_id = ?`

	var p core.UserProfile
	var personality, expertise, interestsStr string

	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&personality, &expertise, &interestsStr, &p.ConfidenceScore, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	p.UserID = userID
	p.Personality = core.PersonalityType(personality)
	p.Expertise = core.ExpertiseLevel(expertise)

	if err := json.Unmarshal([]byte(interestsStr), &p.TechnicalInterests); err != nil {
		p.TechnicalInterests = []string{}
	}

	return &p, nil
}
