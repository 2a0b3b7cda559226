package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/ports/secondary"
	"github.com/example/playersync/internal/wire"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stats <player-id>",
		Short: "Show a player's accumulated counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cfg.TelemetryEnabled {
				return fmt.Errorf("telemetry is disabled in the config")
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			container, err := wire.New(cfg, nil, logger)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer container.Close()

			playerID := args[0]
			row, err := container.Stats.GetByID(context.Background(), playerID)
			if errors.Is(err, secondary.ErrStatsNotFound) {
				return fmt.Errorf("no stats recorded for player %s", playerID)
			}
			if err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Player:\t%s\n", row.PlayerID)
			fmt.Fprintf(w, "Playtime:\t%s\n", (time.Duration(row.PlaytimeSeconds) * time.Second).String())
			fmt.Fprintf(w, "Kills:\t%d\n", row.Kills)
			fmt.Fprintf(w, "Deaths:\t%d\n", row.Deaths)
			fmt.Fprintf(w, "Captures:\t%d\n", row.Captures)
			if !row.LastUpdated.IsZero() {
				fmt.Fprintf(w, "Updated:\t%s\n", row.LastUpdated.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}

	addConfigFlag(cmd, &configPath)
	return cmd
}
