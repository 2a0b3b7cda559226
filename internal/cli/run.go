package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/adapters/httpapi"
	"github.com/example/playersync/internal/app"
	"github.com/example/playersync/internal/wire"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sync daemon",
		Long: `Run the periodic reconciliation sweep and the host event API until
interrupted. The sweep stays dormant while the player data directory is
missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			container, err := wire.New(cfg, nil, logger)
			if err != nil {
				return fmt.Errorf("failed to assemble daemon: %w", err)
			}
			defer container.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var wg sync.WaitGroup

			if cfg.SweepEnabled {
				scheduler := app.NewScheduler(container.Services.Sweep, cfg.SweepInterval(), logger)
				wg.Add(1)
				go func() {
					defer wg.Done()
					scheduler.Run(ctx)
				}()
			} else {
				logger.Info("periodic sweep disabled")
			}

			if cfg.ListenAddr != "" {
				server := httpapi.NewServer(cfg.ListenAddr,
					container.Services.Sweep,
					container.Services.Lifecycle,
					container.Services.Telemetry,
					logger)

				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := server.Start(); err != nil {
						logger.Error("http api stopped", "error", err)
						stop()
					}
				}()

				wg.Add(1)
				go func() {
					defer wg.Done()
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					if err := server.Shutdown(shutdownCtx); err != nil {
						logger.Error("http api shutdown failed", "error", err)
					}
				}()
			}

			if !cfg.SweepEnabled && cfg.ListenAddr == "" {
				return fmt.Errorf("nothing to run: sweep disabled and no listen address configured")
			}

			<-ctx.Done()
			wg.Wait()
			logger.Info("daemon stopped")
			return nil
		},
	}

	addConfigFlag(cmd, &configPath)
	return cmd
}
