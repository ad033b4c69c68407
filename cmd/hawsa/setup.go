package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/hawsadev/hawsa/internal/config"
	"github.com/hawsadev/hawsa/internal/service/analyzer"
	"github.com/hawsadev/hawsa/internal/service/engineering"
	"github.com/hawsadev/hawsa/internal/service/orchestrator"
	"github.com/hawsadev/hawsa/internal/service/skill"
	"github.com/hawsadev/hawsa/internal/storage/sqlite"
	"github.com/hawsadev/hawsa/internal/transport/cli"
	"github.com/hawsadev/hawsa/internal/transport/httpapi"
	"github.com/hawsadev/hawsa/pkg/log"
	"github.com/hawsadev/hawsa/pkg/srv"
	"github.com/joho/godotenv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	interactions := sqlite.NewInteractionsRepo(db)
	notes := sqlite.NewNotesRepo(db)
	profiles := sqlite.NewProfilesRepo(db)

	// 3. Core services
	an := analyzer.New(profiles, notes)
	eng := engineering.New()

	// Registration order is the routing priority
	registry := skill.NewRegistry(
		skill.NewEngineering(eng),
		skill.NewCreative(),
	)

	orch := orchestrator.New(interactions, an, eng, registry, appCfg.ContextWindowSize)

	// 4. Transports
	if appCfg.EnableHTTP {
		srvCfg := config.NewServerConfig(ctx)
		services = append(services, httpapi.NewServer(srvCfg, orch))
	}
	if appCfg.EnableCLI {
		repl, err := cli.NewREPL(appCfg, orch)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize interactive cli")
		}
		services = append(services, repl)
	}

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
