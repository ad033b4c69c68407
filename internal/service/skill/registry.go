// Package skill implements the pluggable message handlers and their
// fixed-priority routing.
package skill

import (
	"context"

	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/pkg/log"
)

type Registry struct {
	skills []core.Skill
}

// NewRegistry keeps the skills in the given order; that order is the
// routing priority.
func NewRegistry(skills ...core.Skill) *Registry {
	return &Registry{skills: skills}
}

// Route tries each skill in registration order and returns the output
// of the first one that claims the message. A skill that fails while
// handling is logged and demoted to a non-match, so routing falls
// through to the next skill. At most one skill output is ever used.
func (r *Registry) Route(ctx context.Context, message string) (string, bool) {
	logger := log.FromCtx(ctx)

	for _, s := range r.skills {
		if !s.CanHandle(message) {
			continue
		}

		out, err := s.Handle(ctx, message)
		if err != nil {
			logger.Warn().Err(err).Str("skill", s.Name()).Msg("skill failed, treating as non-match")
			continue
		}

		logger.Debug().Str("skill", s.Name()).Msg("skill handled message")
		return out, true
	}

	return "", false
}
