package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/hawsadev/hawsa/internal/config"
	"github.com/hawsadev/hawsa/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCore struct {
	messages []string
}

func (s *stubCore) ProcessQuery(ctx context.Context, userID, message string) core.QueryResult {
	s.messages = append(s.messages, message)
	return core.QueryResult{
		Success:  true,
		UserID:   userID,
		Response: core.Response{Text: "رد تجريبي"},
		Media:    core.Media{Type: "none"},
	}
}

// newTestInstance builds a readline instance over in-memory pipes so the
// loop can be driven without a terminal.
func newTestInstance(t *testing.T, input string, out io.Writer) *readline.Instance {
	t.Helper()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:         ">>> ",
		HistoryFile:    filepath.Join(t.TempDir(), "input_history"),
		Stdin:          io.NopCloser(strings.NewReader(input)),
		Stdout:         out,
		Stderr:         out,
		FuncIsTerminal: func() bool { return false },
		FuncMakeRaw:    func() error { return nil },
		FuncExitRaw:    func() error { return nil },
	})
	require.NoError(t, err)
	t.Cleanup(func() { rl.Close() })
	return rl
}

func newTestREPL(t *testing.T, input string) (*REPL, *stubCore, *bytes.Buffer) {
	t.Helper()

	stub := &stubCore{}
	out := &bytes.Buffer{}
	r := &REPL{
		cfg:  &config.AppConfig{LocalUserID: "local"},
		core: stub,
		rl:   newTestInstance(t, input, out),
	}
	return r, stub, out
}

func TestNewREPL_CreatesRuntimeDirAndHistory(t *testing.T) {
	runtime := filepath.Join(t.TempDir(), "runtime")
	t.Setenv("HAWSA_RUNTIME_PATH", runtime)

	r, err := NewREPL(&config.AppConfig{LocalUserID: "local"}, &stubCore{})
	require.NoError(t, err)
	defer r.Shutdown(context.Background())

	info, err := os.Stat(runtime)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestREPL_ProcessesLinesUntilExit(t *testing.T) {
	r, stub, out := newTestREPL(t, "مرحبا\n\nسؤال ثاني\nexit\nignored after exit\n")

	err := r.Start(context.Background())
	require.NoError(t, err)

	// Empty lines are skipped, everything after exit is never read
	assert.Equal(t, []string{"مرحبا", "سؤال ثاني"}, stub.messages)
	assert.Contains(t, out.String(), "رد تجريبي")
}

func TestREPL_ArabicExitWord(t *testing.T) {
	r, stub, _ := newTestREPL(t, "خروج\n")

	require.NoError(t, r.Start(context.Background()))
	assert.Empty(t, stub.messages)
}

func TestREPL_EOFEndsLoop(t *testing.T) {
	r, stub, _ := newTestREPL(t, "مرحبا\n")

	require.NoError(t, r.Start(context.Background()))
	assert.Equal(t, []string{"مرحبا"}, stub.messages)
}

func TestREPL_InterruptOnEmptyLineExits(t *testing.T) {
	r, stub, _ := newTestREPL(t, "\x03")

	require.NoError(t, r.Start(context.Background()))
	assert.Empty(t, stub.messages)
}

func TestREPL_PrintsMediaStub(t *testing.T) {
	stub := &stubCore{}
	out := &bytes.Buffer{}
	r := &REPL{
		cfg:  &config.AppConfig{LocalUserID: "local"},
		core: mediaCore{stub},
		rl:   newTestInstance(t, "ارسم مخطط\nexit\n", out),
	}

	require.NoError(t, r.Start(context.Background()))
	assert.Contains(t, out.String(), "diagram_description")
}

type mediaCore struct{ inner *stubCore }

func (m mediaCore) ProcessQuery(ctx context.Context, userID, message string) core.QueryResult {
	result := m.inner.ProcessQuery(ctx, userID, message)
	result.Media = core.Media{Type: "diagram_description", Content: "مخطط نصي"}
	return result
}
