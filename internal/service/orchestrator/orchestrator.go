// Package orchestrator sequences the processing pipeline for one
// request: context lookup, profile analysis, skill dispatch, response
// composition, media stub, memory write-back, result assembly.
package orchestrator

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/internal/service/analyzer"
	"github.com/hawsadev/hawsa/internal/service/composer"
	"github.com/hawsadev/hawsa/internal/service/engineering"
	"github.com/hawsadev/hawsa/internal/service/media"
	"github.com/hawsadev/hawsa/internal/service/skill"
	"github.com/hawsadev/hawsa/pkg/log"
)

const (
	qualityHigh   = "HIGH"
	qualityMedium = "MEDIUM"

	// messages longer than this (in runes) count as high-quality input
	qualityThreshold = 20
)

type Orchestrator struct {
	interactions core.InteractionRepository
	analyzer     *analyzer.Analyzer
	engineering  *engineering.Service
	skills       *skill.Registry
	contextLimit int
}

func New(
	interactions core.InteractionRepository,
	an *analyzer.Analyzer,
	eng *engineering.Service,
	skills *skill.Registry,
	contextLimit int,
) *Orchestrator {
	return &Orchestrator{
		interactions: interactions,
		analyzer:     an,
		engineering:  eng,
		skills:       skills,
		contextLimit: contextLimit,
	}
}

// ProcessQuery runs the full pipeline for one message and always
// returns a populated result. The profile is threaded through this
// call, never stored on the orchestrator, so concurrent callers cannot
// observe each other's state. Every side-effecting step is fail-soft:
// a failed context read yields an empty context and failed write-backs
// are logged, neither aborts the request.
func (o *Orchestrator) ProcessQuery(ctx context.Context, userID, message string) core.QueryResult {
	start := time.Now()
	logger := log.FromCtx(ctx)

	// 1. Recent context, read-only
	recent, err := o.interactions.RecentContext(ctx, userID, o.contextLimit)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to load recent context")
		recent = nil
	}

	// 2. Profile analysis (upserts the profile row internally)
	profile := o.analyzer.Analyze(ctx, userID, message, 0.0)

	// 3. Engineering recommendations, independent of skill routing
	recs := o.engineering.Recommendations(message)
	if recs == nil {
		recs = []core.Recommendation{}
	}

	// 4. Base response plus at most one skill augmentation
	text := composer.BaseResponse(message)
	if skillText, ok := o.skills.Route(ctx, message); ok {
		text = text + "\n\n" + skillText
	}

	// 5. Personality tone prefix over the combined text
	text = composer.Personalize(text, profile)

	// 6. Media stub
	mediaOut := media.Generate(message)

	// Reported duration covers the pipeline, not the write-back
	elapsed := time.Since(start)

	// 7. Write both sides of the exchange back to memory
	o.saveInteraction(ctx, userID, core.RoleUser, message, "input")
	o.saveInteraction(ctx, userID, core.RoleAssistant, text, "response")

	// 8. Assemble the result
	quality := qualityMedium
	if utf8.RuneCountInString(message) > qualityThreshold {
		quality = qualityHigh
	}

	contextUsed := make([]core.ContextItem, 0, len(recent))
	for _, it := range recent {
		contextUsed = append(contextUsed, core.ContextItem{
			Role:      it.Role,
			Content:   it.Content,
			CreatedAt: it.CreatedAt,
			Tags:      it.Tags,
		})
	}

	return core.QueryResult{
		Success: true,
		UserID:  userID,
		UserProfile: core.ProfileSummary{
			Personality: profile.Personality,
			Expertise:   profile.Expertise,
			Interests:   profile.TechnicalInterests,
			Confidence:  profile.ConfidenceScore,
		},
		ContextUsed: contextUsed,
		Response: core.Response{
			Text:                     text,
			TechnicalRecommendations: recs,
			// Note retrieval is not wired into the request path yet;
			// notes are exposed through the notes command instead.
			PersonalizedNotes: []string{},
		},
		Media: mediaOut,
		Analytics: core.Analytics{
			ProcessingTimeSeconds: elapsed.Seconds(),
			ContentTypesGenerated: profile.PreferredContentTypes,
			InteractionQuality:    quality,
		},
	}
}

func (o *Orchestrator) saveInteraction(ctx context.Context, userID, role, content, tag string) {
	if err := o.interactions.Add(ctx, userID, role, content, []string{tag}, ""); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("role", role).Msg("failed to save interaction")
	}
}
