// Package analyzer maps a raw message to a coarse behavioral profile
// using a fixed, ordered keyword rule table. Classification is
// deterministic: rules are evaluated in priority order and the first
// match wins.
package analyzer

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/pkg/log"
)

const (
	// rulesVersion identifies the classification table below; bump it
	// whenever the vocabulary or priority order changes.
	rulesVersion = 1

	noteTypeTechInterests = "tech_interests"
	interestsImportance   = 1.5

	bulletsThreshold = 60
)

type classificationRule struct {
	name        string
	terms       []string
	personality core.PersonalityType
	expertise   core.ExpertiseLevel
	interests   []string
}

// rules is evaluated top-down; the technical vocabulary outranks the
// design vocabulary when a message contains both.
var rules = []classificationRule{
	{
		name:        "technical",
		terms:       []string{"كود", "code", "script", "برمجة"},
		personality: core.PersonalityAnalytical,
		expertise:   core.ExpertiseAdvanced,
		interests:   []string{"programming", "systems", "automation"},
	},
	{
		name:        "design",
		terms:       []string{"تصميم", "ui", "ux", "واجهة"},
		personality: core.PersonalityCreative,
		expertise:   core.ExpertiseIntermediate,
		interests:   []string{"design", "ui/ux"},
	},
}

var fallbackRule = classificationRule{
	name:        "practical",
	personality: core.PersonalityPractical,
	expertise:   core.ExpertiseIntermediate,
	interests:   []string{"general_engineering"},
}

type Analyzer struct {
	profiles core.ProfileRepository
	notes    core.NoteRepository
}

func New(profiles core.ProfileRepository, notes core.NoteRepository) *Analyzer {
	return &Analyzer{
		profiles: profiles,
		notes:    notes,
	}
}

// Analyze classifies the message and upserts the resulting profile.
// It never fails: a persistence error is logged and the computed
// profile is returned anyway, and the long-term interest note is
// best-effort enrichment that must not break the request.
func (a *Analyzer) Analyze(ctx context.Context, userID, message string, baseConfidence float64) core.UserProfile {
	logger := log.FromCtx(ctx)

	matched := classify(message)

	// Message length is counted in runes; the canonical inputs are Arabic
	length := utf8.RuneCountInString(message)

	confidence := 0.4 + baseConfidence + float64(length)/200.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	preferred := []core.ContentType{core.ContentText}
	if length > bulletsThreshold {
		preferred = append(preferred, core.ContentBullets)
	}

	profile := core.UserProfile{
		UserID:                userID,
		Personality:           matched.personality,
		Expertise:             matched.expertise,
		TechnicalInterests:    append([]string(nil), matched.interests...),
		ConfidenceScore:       confidence,
		PreferredContentTypes: preferred,
		UpdatedAt:             time.Now(),
	}

	if err := a.profiles.Upsert(ctx, profile); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist profile")
		return profile
	}

	a.saveInterestsNote(ctx, userID, profile.TechnicalInterests)

	logger.Debug().
		Str("user_id", userID).
		Str("rule", matched.name).
		Int("rules_version", rulesVersion).
		Float64("confidence", confidence).
		Msg("analyzed user message")

	return profile
}

func classify(message string) classificationRule {
	low := strings.ToLower(message)
	for _, r := range rules {
		for _, term := range r.terms {
			if strings.Contains(low, term) {
				return r
			}
		}
	}
	return fallbackRule
}

// saveInterestsNote records the inferred interests as a weighted
// long-term note. Failures are swallowed: the note is enrichment, not
// part of the analysis contract.
func (a *Analyzer) saveInterestsNote(ctx context.Context, userID string, interests []string) {
	if a.notes == nil || len(interests) == 0 {
		return
	}

	text := "اهتمامات تقنية: " + strings.Join(interests, ", ")
	if err := a.notes.Add(ctx, userID, text, noteTypeTechInterests, interestsImportance); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("user_id", userID).Msg("failed to save interests note")
	}
}
