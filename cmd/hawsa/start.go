package main

import (
	"os"
	"os/signal"

	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/pkg/log"
	"github.com/hawsadev/hawsa/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Hawsa services",
	Long:  `Initializes the storage and starts all configured transports (HTTP API, interactive CLI).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().
			Str("name", core.HawsaName).
			Str("version", core.HawsaVersion).
			Msg("starting hawsa")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("hawsa has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
