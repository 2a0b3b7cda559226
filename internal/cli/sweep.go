package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/wire"
)

// SweepCmd returns the sweep command
func SweepCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a single reconciliation pass and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			container, err := wire.New(cfg, nil, logger)
			if err != nil {
				return fmt.Errorf("failed to assemble services: %w", err)
			}
			defer container.Close()

			report, err := container.Services.Sweep.RunSweep(context.Background())
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}

			if report.Dormant {
				fmt.Printf("%s player data directory %s not found, nothing to do\n",
					color.New(color.FgYellow).Sprint("dormant:"), cfg.DataDir)
				return nil
			}

			fmt.Printf("%s in %s\n", color.New(color.FgHiGreen).Sprint("Sweep complete"), report.Duration.Round(time.Millisecond))
			fmt.Printf("  Files seen:        %d\n", report.FilesSeen)
			fmt.Printf("  Pushed to store:   %d\n", report.PushedToStore)
			fmt.Printf("  Pushed to file:    %d\n", report.PushedToFile)
			fmt.Printf("  Materialized:      %d\n", report.Materialized)
			fmt.Printf("  Stats merged:      %d\n", report.StatsMerged)
			if report.SettingsPushed {
				fmt.Println("  Settings pushed:   yes")
			}
			if report.Failed > 0 {
				fmt.Printf("  %s %d\n", color.New(color.FgRed).Sprint("Failed:"), report.Failed)
			}
			return nil
		},
	}

	addConfigFlag(cmd, &configPath)
	return cmd
}
