package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds grid layout configuration
type UIConfig struct {
	// Columns pins a fixed column count; 0 derives columns from the
	// terminal width instead.
	Columns        int    `mapstructure:"columns"`
	MinTileWidth   int    `mapstructure:"min_tile_width"`
	MaxTileWidth   int    `mapstructure:"max_tile_width"`
	Gutter         int    `mapstructure:"gutter"`
	GutterCompact  int    `mapstructure:"gutter_compact"`
	MaxGridWidth   int    `mapstructure:"max_grid_width"`
	RowHeight      string `mapstructure:"row_height"` // none, fixed, square, largest
	FixedRowHeight int    `mapstructure:"fixed_row_height"`
	SizeCategory   string `mapstructure:"size_category"`
	SizeClass      string `mapstructure:"size_class"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Columns:        0,
			MinTileWidth:   24,
			MaxTileWidth:   40,
			Gutter:         2,
			GutterCompact:  1,
			MaxGridWidth:   160,
			RowHeight:      "largest",
			FixedRowHeight: 7,
			SizeCategory:   "medium",
			SizeClass:      "regular",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mosaic", "mosaic.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "mosaic", "mosaic.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mosaic")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mosaic")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("MOSAIC")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// First run: persist the defaults so the user has a file to edit.
		// Best effort, a read-only home still gets a working session.
		_ = SaveConfig(cfg)
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to the default config path
func SaveConfig(cfg *Config) error {
	return writeConfig(cfg, defaultConfigPath())
}

// writeConfig writes the configuration as config.yaml under dir. A fresh
// viper instance keeps env overrides and read state out of the written file.
func writeConfig(cfg *Config, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v := viper.New()
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("ui.min_tile_width", cfg.UI.MinTileWidth)
	v.Set("ui.max_tile_width", cfg.UI.MaxTileWidth)
	v.Set("ui.gutter", cfg.UI.Gutter)
	v.Set("ui.gutter_compact", cfg.UI.GutterCompact)
	v.Set("ui.max_grid_width", cfg.UI.MaxGridWidth)
	v.Set("ui.row_height", cfg.UI.RowHeight)
	v.Set("ui.fixed_row_height", cfg.UI.FixedRowHeight)
	v.Set("ui.size_category", cfg.UI.SizeCategory)
	v.Set("ui.size_class", cfg.UI.SizeClass)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
