package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Simulation.StartingCash != 1000000 {
		t.Errorf("StartingCash = %v, want 1000000", cfg.Simulation.StartingCash)
	}
	if cfg.Simulation.TickInterval != 600*time.Millisecond {
		t.Errorf("TickInterval = %v, want 600ms", cfg.Simulation.TickInterval)
	}
	if cfg.Simulation.FeeRate != 0.001 || cfg.Simulation.MarginFraction != 0.2 {
		t.Errorf("fee/margin = %v/%v, want 0.001/0.2", cfg.Simulation.FeeRate, cfg.Simulation.MarginFraction)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.StartingCash != 1000000 {
		t.Errorf("StartingCash = %v, want default", cfg.Simulation.StartingCash)
	}
}

func TestLoadReadsTOML(t *testing.T) {
	dir := t.TempDir()
	toml := `
[simulation]
starting_cash = 250000.0
tick_interval = "1s"

[logging]
level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.StartingCash != 250000 {
		t.Errorf("StartingCash = %v, want 250000", cfg.Simulation.StartingCash)
	}
	if cfg.Simulation.TickInterval != time.Second {
		t.Errorf("TickInterval = %v, want 1s", cfg.Simulation.TickInterval)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Simulation.FeeRate != 0.001 {
		t.Errorf("FeeRate = %v, want default 0.001", cfg.Simulation.FeeRate)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	toml := `
[simulation]
starting_cash = -5.0
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("negative starting_cash accepted")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PAPER_EXCHANGE_DB", "/tmp/override.db")
	t.Setenv("PAPER_EXCHANGE_LOG_LEVEL", "warn")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.DBPath != "/tmp/override.db" {
		t.Errorf("DBPath = %q, want env override", cfg.Store.DBPath)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestValidateBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.Simulation.TickInterval = 0 }},
		{"fee at 1", func(c *Config) { c.Simulation.FeeRate = 1 }},
		{"margin above 1", func(c *Config) { c.Simulation.MarginFraction = 1.5 }},
		{"zero floor", func(c *Config) { c.Simulation.PriceFloor = 0 }},
		{"zero window", func(c *Config) { c.Simulation.WindowSize = 0 }},
		{"zero volatility", func(c *Config) { c.Simulation.BaseVolatility = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
