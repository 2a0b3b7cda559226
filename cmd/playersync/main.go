package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/cli"
	"github.com/example/playersync/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "playersync",
		Short:   "playersync - reconcile player files with the server database",
		Version: version.String(),
		Long: `playersync keeps per-player JSON files written by the game server in sync
with the shared player database. Whichever side was saved more recently wins;
session counters (kills, deaths, captures, playtime) accumulate instead of
being overwritten.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.SweepCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
