package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the effective configuration and store summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			fmt.Println("playersync status")
			fmt.Println()
			if _, statErr := os.Stat(configPath); statErr != nil {
				fmt.Printf("Config:     %s (not found, using defaults)\n", configPath)
			} else {
				fmt.Printf("Config:     %s\n", configPath)
			}
			fmt.Printf("Data dir:   %s\n", cfg.DataDir)
			fmt.Printf("Database:   %s\n", cfg.DBPath)
			fmt.Printf("Server ID:  %d\n", cfg.ServerID)
			fmt.Printf("Sweep:      %s\n", onOff(cfg.SweepEnabled, fmt.Sprintf("every %s", cfg.SweepInterval())))
			fmt.Printf("Telemetry:  %s\n", onOff(cfg.TelemetryEnabled, ""))
			fmt.Printf("Event API:  %s\n", valueOr(cfg.ListenAddr, "disabled"))
			fmt.Println()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			container, err := wire.New(cfg, nil, logger)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer container.Close()

			records, err := container.Players.List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list players: %w", err)
			}
			fmt.Printf("Stored players: %d\n", len(records))

			if container.Files.Available() {
				ids, err := container.Files.List(context.Background())
				if err != nil {
					return fmt.Errorf("failed to list player files: %w", err)
				}
				fmt.Printf("Player files:   %d\n", len(ids))
			} else {
				fmt.Println("Player files:   directory missing (sync dormant)")
			}
			return nil
		},
	}

	addConfigFlag(cmd, &configPath)
	return cmd
}

func onOff(enabled bool, detail string) string {
	if !enabled {
		return "off"
	}
	if detail == "" {
		return "on"
	}
	return "on, " + detail
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
