package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.SweepEnabled {
		t.Error("expected sweep enabled by default")
	}
	if cfg.SweepIntervalSeconds != 60 {
		t.Errorf("expected default interval 60, got %d", cfg.SweepIntervalSeconds)
	}
	if cfg.SettingsPushThreshold != 50 {
		t.Errorf("expected default threshold 50, got %d", cfg.SettingsPushThreshold)
	}
	if !cfg.TelemetryEnabled {
		t.Error("expected telemetry enabled by default")
	}
	if cfg.DataDir == "" {
		t.Error("expected a default data dir")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playersync.json")
	content := `{"data_dir": "/srv/players", "settings_push_threshold": 10}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/srv/players" {
		t.Errorf("expected data dir '/srv/players', got '%s'", cfg.DataDir)
	}
	if cfg.SettingsPushThreshold != 10 {
		t.Errorf("expected threshold 10, got %d", cfg.SettingsPushThreshold)
	}
	// Absent fields keep defaults
	if cfg.SweepIntervalSeconds != 60 {
		t.Errorf("expected default interval 60, got %d", cfg.SweepIntervalSeconds)
	}
	if !cfg.SweepEnabled {
		t.Error("expected sweep to stay enabled when field is absent")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playersync.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_NonPositiveIntervalFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playersync.json")
	if err := os.WriteFile(path, []byte(`{"sweep_interval_seconds": -5}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SweepIntervalSeconds != 60 {
		t.Errorf("expected fallback to 60, got %d", cfg.SweepIntervalSeconds)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playersync.json")

	cfg := Default()
	cfg.ServerID = 3
	cfg.DataDir = "/tmp/players"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ServerID != 3 {
		t.Errorf("expected server id 3, got %d", loaded.ServerID)
	}
	if loaded.DataDir != "/tmp/players" {
		t.Errorf("expected data dir '/tmp/players', got '%s'", loaded.DataDir)
	}
}

func TestSweepInterval(t *testing.T) {
	cfg := &Config{SweepIntervalSeconds: 90}
	if cfg.SweepInterval() != 90*time.Second {
		t.Errorf("expected 90s, got %v", cfg.SweepInterval())
	}
}
