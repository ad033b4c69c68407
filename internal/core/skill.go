package core

import "context"

// Skill is an independently pluggable text-handling rule. Skills are
// tried in registration order; the first one whose CanHandle returns
// true produces the augmentation and routing stops.
type Skill interface {
	Name() string
	CanHandle(message string) bool
	Handle(ctx context.Context, message string) (string, error)
}
