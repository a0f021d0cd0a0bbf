// Package config provides configuration management for the exchange
// simulator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all simulator configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Store      StoreConfig      `mapstructure:"store"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig holds the market simulation parameters.
type SimulationConfig struct {
	StartingCash       float64       `mapstructure:"starting_cash"`
	TickInterval       time.Duration `mapstructure:"tick_interval"`
	FeeRate            float64       `mapstructure:"fee_rate"`
	MarginFraction     float64       `mapstructure:"margin_fraction"`
	PriceFloor         float64       `mapstructure:"price_floor"`
	WindowSize         int           `mapstructure:"window_size"`
	LowPriceThreshold  float64       `mapstructure:"low_price_threshold"`
	LowPriceVolatility float64       `mapstructure:"low_price_volatility"`
	BaseVolatility     float64       `mapstructure:"base_volatility"`
	MaxVolumeIncrement int64         `mapstructure:"max_volume_increment"`
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/paper-exchange"
	}
	return filepath.Join(home, ".config", "paper-exchange")
}

// Default returns the built-in configuration, matching the reference
// simulation parameters.
func Default() *Config {
	dir := DefaultConfigDir()
	return &Config{
		Simulation: SimulationConfig{
			StartingCash:       1000000,
			TickInterval:       600 * time.Millisecond,
			FeeRate:            0.001,
			MarginFraction:     0.2,
			PriceFloor:         0.1,
			WindowSize:         20,
			LowPriceThreshold:  500,
			LowPriceVolatility: 0.004,
			BaseVolatility:     0.0012,
			MaxVolumeIncrement: 500,
		},
		Store: StoreConfig{
			DBPath: filepath.Join(dir, "exchange.db"),
		},
		Logging: LoggingConfig{
			Level:      "info",
			Console:    true,
			File:       true,
			FilePath:   filepath.Join(dir, "logs", "exchange.log"),
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
	}
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file falls
// back to defaults; environment overrides apply either way.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("simulation.starting_cash", cfg.Simulation.StartingCash)
	v.SetDefault("simulation.tick_interval", cfg.Simulation.TickInterval)
	v.SetDefault("simulation.fee_rate", cfg.Simulation.FeeRate)
	v.SetDefault("simulation.margin_fraction", cfg.Simulation.MarginFraction)
	v.SetDefault("simulation.price_floor", cfg.Simulation.PriceFloor)
	v.SetDefault("simulation.window_size", cfg.Simulation.WindowSize)
	v.SetDefault("simulation.low_price_threshold", cfg.Simulation.LowPriceThreshold)
	v.SetDefault("simulation.low_price_volatility", cfg.Simulation.LowPriceVolatility)
	v.SetDefault("simulation.base_volatility", cfg.Simulation.BaseVolatility)
	v.SetDefault("simulation.max_volume_increment", cfg.Simulation.MaxVolumeIncrement)
	v.SetDefault("store.db_path", cfg.Store.DBPath)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.file_path", cfg.Logging.FilePath)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAPER_EXCHANGE_DB"); v != "" {
		cfg.Store.DBPath = v
	}
	if v := os.Getenv("PAPER_EXCHANGE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.StartingCash <= 0 {
		return fmt.Errorf("starting_cash must be positive")
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive")
	}
	if s.FeeRate < 0 || s.FeeRate >= 1 {
		return fmt.Errorf("fee_rate must be in [0, 1)")
	}
	if s.MarginFraction <= 0 || s.MarginFraction > 1 {
		return fmt.Errorf("margin_fraction must be in (0, 1]")
	}
	if s.PriceFloor <= 0 {
		return fmt.Errorf("price_floor must be positive")
	}
	if s.WindowSize <= 0 {
		return fmt.Errorf("window_size must be positive")
	}
	if s.LowPriceVolatility <= 0 || s.BaseVolatility <= 0 {
		return fmt.Errorf("volatility tiers must be positive")
	}
	return nil
}
