// Package cli is the interactive local transport: a readline loop with
// persistent input history that feeds messages to the core for a fixed
// local user.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/hawsadev/hawsa/internal/config"
	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/internal/service/ui"
	"github.com/hawsadev/hawsa/pkg/log"
)

type Core interface {
	ProcessQuery(ctx context.Context, userID, message string) core.QueryResult
}

type REPL struct {
	cfg  *config.AppConfig
	core Core
	rl   *readline.Instance
}

func NewREPL(cfg *config.AppConfig, c Core) (*REPL, error) {
	// Ensure runtime directory exists for the history file
	runtimePath := config.GetRuntimePath()
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.PromptStyle.Render(">>> ") + " ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &REPL{
		cfg:  cfg,
		core: c,
		rl:   rl,
	}, nil
}

func (r *REPL) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Str("user_id", r.cfg.LocalUserID).Msg("interactive chat started, type 'exit' to quit")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			return nil
		}

		result := r.core.ProcessQuery(ctx, r.cfg.LocalUserID, line)
		fmt.Fprintf(r.rl.Stdout(), "\n%s\n", result.Response.Text)

		if result.Media.Type != "none" {
			fmt.Fprintf(r.rl.Stdout(), "[%s] %s\n", result.Media.Type, result.Media.Content)
		}
	}
}

func (r *REPL) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "خروج":
		return true
	}
	return false
}
