// Package cli provides the playersync command implementations.
package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/example/playersync/internal/config"
)

// addConfigFlag registers the shared --config flag.
func addConfigFlag(cmd *cobra.Command, configPath *string) {
	cmd.Flags().StringVarP(configPath, "config", "c", config.DefaultFileName, "path to the config file")
}

// loadConfig reads the config file, falling back to defaults when the file
// does not exist. A present-but-broken file is an error; silently running
// with defaults would mask it.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
