package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/config"
	"github.com/example/playersync/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file and initialize the database",
		Long: `Write a playersync.json with the default settings and create the SQLite
database with the required schema. Existing files are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil {
				fmt.Printf("Config already exists at %s\n", configPath)
			} else {
				if err := config.Save(configPath, config.Default()); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("✓ Config written to %s\n", configPath)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			fmt.Printf("✓ Database initialized at %s\n", cfg.DBPath)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  playersync run")
			fmt.Println("  playersync status")
			return nil
		},
	}

	addConfigFlag(cmd, &configPath)
	return cmd
}
