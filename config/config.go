// ABOUTME: Configuration management for the ranking presenter
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads and saves the discipline-ranker TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "discipline-ranker.toml"

// Config holds presenter settings. The gesture threshold and the priority
// clamp range are engine constants and deliberately not part of it.
type Config struct {
	// Terminal cell size used to convert mouse cells into pixel coordinates
	CellWidthPx  float64 `toml:"cell_width_px"`
	CellHeightPx float64 `toml:"cell_height_px"`

	// Width in cells of the drag-handle column at the start of each row
	HandleWidth int `toml:"handle_width"`

	// Persistence behaviour
	AutoSave  bool `toml:"auto_save"`
	WatchFile bool `toml:"watch_file"`

	UndoLimit int `toml:"undo_limit"`
}

// DefaultConfig returns the default presenter configuration
func DefaultConfig() Config {
	return Config{
		CellWidthPx:  8,
		CellHeightPx: 16,
		HandleWidth:  3,
		AutoSave:     false,
		WatchFile:    true,
		UndoLimit:    50,
	}
}

// Validate rejects settings the presenter cannot work with
func (c Config) Validate() error {
	var errs []error

	if c.CellWidthPx <= 0 {
		errs = append(errs, fmt.Errorf("cell_width_px must be positive, got %v", c.CellWidthPx))
	}

	if c.CellHeightPx <= 0 {
		errs = append(errs, fmt.Errorf("cell_height_px must be positive, got %v", c.CellHeightPx))
	}

	if c.HandleWidth < 1 {
		errs = append(errs, fmt.Errorf("handle_width must be at least 1, got %d", c.HandleWidth))
	}

	if c.UndoLimit < 1 {
		errs = append(errs, fmt.Errorf("undo_limit must be at least 1, got %d", c.UndoLimit))
	}

	return errors.Join(errs...)
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/discipline-ranker/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./" + fileName); err == nil {
		return "./" + fileName
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./" + fileName
	}

	return filepath.Join(home, ".config", "discipline-ranker", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist, returns default config. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}

		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	return Encode(f, cfg)
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
