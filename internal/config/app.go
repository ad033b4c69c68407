package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/hawsadev/hawsa/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"HAWSA_RUNTIME_PATH" envDefault:".hawsa"`

	// Transport Flags
	EnableHTTP bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableCLI  bool `env:"ENABLE_CLI" envDefault:"true"`

	// User id used by the local REPL transport
	LocalUserID string `env:"HAWSA_LOCAL_USER_ID" envDefault:"local"`

	// Context Management
	ContextWindowSize int `env:"CONTEXT_WINDOW_SIZE" envDefault:"6"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "hawsa.db")
}
