package skill

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hawsadev/hawsa/internal/service/engineering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSkill struct {
	name    string
	matches bool
	out     string
	err     error
}

func (s *stubSkill) Name() string { return s.name }

func (s *stubSkill) CanHandle(message string) bool { return s.matches }

func (s *stubSkill) Handle(ctx context.Context, message string) (string, error) {
	return s.out, s.err
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(
		NewEngineering(engineering.New()),
		NewCreative(),
	)

	// "كود" triggers engineering, "تصميم" triggers creative; the
	// engineering skill is registered first and must win.
	out, ok := registry.Route(ctx, "كود لأداة تصميم")
	require.True(t, ok)
	assert.Contains(t, out, "معالجة هندسية")
	assert.NotContains(t, out, "تصميم إبداعي")
}

func TestRegistry_ErrorDemotesToNonMatch(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(
		&stubSkill{name: "broken", matches: true, err: errors.New("boom")},
		&stubSkill{name: "healthy", matches: true, out: "handled"},
	)

	out, ok := registry.Route(ctx, "anything")
	require.True(t, ok)
	assert.Equal(t, "handled", out)
}

func TestRegistry_NoMatch(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(
		NewEngineering(engineering.New()),
		NewCreative(),
	)

	out, ok := registry.Route(ctx, "مرحبا")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRegistry_AllSkillsFailing(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(
		&stubSkill{name: "a", matches: true, err: errors.New("boom")},
		&stubSkill{name: "b", matches: true, err: errors.New("boom")},
	)

	_, ok := registry.Route(ctx, "anything")
	assert.False(t, ok)
}

func TestEngineeringSkill_Handle(t *testing.T) {
	ctx := context.Background()
	s := NewEngineering(engineering.New())

	t.Run("with recommendations", func(t *testing.T) {
		require.True(t, s.CanHandle("لدي كود DTC يحتاج تحليل"))

		out, err := s.Handle(ctx, "لدي كود DTC يحتاج تحليل")
		require.NoError(t, err)
		assert.Contains(t, out, "لدي كود DTC يحتاج تحليل")
		assert.Contains(t, out, "تحليل رموز الأعطال")
	})

	t.Run("fallback line when no rule matches", func(t *testing.T) {
		require.True(t, s.CanHandle("مشكلة في ECU"))

		out, err := s.Handle(ctx, "مشكلة في ECU")
		require.NoError(t, err)
		assert.Contains(t, out, "لم يتم العثور على توصيات محددة")
	})
}

func TestCreativeSkill_Handle(t *testing.T) {
	ctx := context.Background()
	s := NewCreative()

	require.True(t, s.CanHandle("أفكر في تصميم واجهة جديدة"))
	require.False(t, s.CanHandle("مرحبا"))

	out, err := s.Handle(ctx, "أفكر في تصميم واجهة جديدة")
	require.NoError(t, err)
	assert.Contains(t, out, "أفكر في تصميم واجهة جديدة")
	for _, line := range []string{"تقسيم الفكرة لوحدات", "System Architecture", "نقاط التكامل"} {
		assert.True(t, strings.Contains(out, line), "missing template line %q", line)
	}
}
