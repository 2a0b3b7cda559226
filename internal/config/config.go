package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultFileName is the config file playersync looks for next to the server.
const DefaultFileName = "playersync.json"

// Config represents the flat playersync configuration
type Config struct {
	DataDir               string `json:"data_dir"`                // directory of per-player JSON files
	DBPath                string `json:"db_path"`                 // SQLite database file
	ServerID              int    `json:"server_id"`               // identifies this instance among cooperating servers
	SweepEnabled          bool   `json:"sweep_enabled"`           // periodic reconciliation sweep on/off
	SweepIntervalSeconds  int    `json:"sweep_interval_seconds"`  // seconds between sweeps
	TelemetryEnabled      bool   `json:"telemetry_enabled"`       // kill/death/capture/playtime counters on/off
	SettingsPushThreshold int    `json:"settings_push_threshold"` // min roster size before ServerSettings is pushed; 0 disables the gate
	ListenAddr            string `json:"listen_addr"`             // host event API address; empty disables the HTTP server
}

// Default returns a Config with the documented defaults applied.
func Default() *Config {
	return &Config{
		DataDir:               filepath.Join("ServerData", "Players"),
		DBPath:                filepath.Join("ServerData", "playersync.db"),
		SweepEnabled:          true,
		SweepIntervalSeconds:  60,
		TelemetryEnabled:      true,
		SettingsPushThreshold: 50,
		ListenAddr:            "127.0.0.1:8730",
	}
}

// Load reads a config file, layering it over the defaults so that absent
// fields keep their documented values.
// Returns an error if the file cannot be read - caller should handle accordingly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SweepIntervalSeconds <= 0 {
		cfg.SweepIntervalSeconds = Default().SweepIntervalSeconds
	}

	return cfg, nil
}

// Save writes the config file with stable formatting.
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SweepInterval returns the sweep period as a duration.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
