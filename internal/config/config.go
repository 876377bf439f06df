// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultOrder          = "status-due"
	DefaultDueTime        = "end-of-day"
	DefaultRefreshSeconds = 30
	DefaultLogLevel       = "info"

	configFileName = "config.toml"
	dataDirName    = ".tmx"

	// Status re-evaluation is a poll; bounds keep it frequent enough to
	// catch pending-to-overdue drift without busy repainting.
	minRefreshSeconds = 15
	maxRefreshSeconds = 300
)

// Config holds the full configuration for tmx.
type Config struct {
	// DataDir is where the task file lives. Empty means ~/.tmx.
	DataDir string `toml:"data_dir"`

	// Order is the display-order strategy: "none" or "status-due".
	Order string `toml:"order"`

	// DefaultDueTime is the time-of-day assumed when a due date is entered
	// without a time: "end-of-day" (23:59 IST) or "start-of-day" (00:00 IST).
	DefaultDueTime string `toml:"default_due_time"`

	// RefreshSeconds is the status re-evaluation interval.
	RefreshSeconds int `toml:"refresh_seconds"`

	LogLevel string `toml:"log_level"`
}

// Load builds configuration from, in priority order: defaults, the user
// config file (~/.tmx/config.toml), and TMX_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := userConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	finalize(cfg)
	return cfg, nil
}

// Refresh returns the re-evaluation interval as a duration.
func (c *Config) Refresh() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

func setDefaults(cfg *Config) {
	cfg.Order = DefaultOrder
	cfg.DefaultDueTime = DefaultDueTime
	cfg.RefreshSeconds = DefaultRefreshSeconds
	cfg.LogLevel = DefaultLogLevel
}

func userConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, dataDirName, configFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TMX_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TMX_ORDER"); v != "" {
		cfg.Order = v
	}
	if v := os.Getenv("TMX_DEFAULT_DUE_TIME"); v != "" {
		cfg.DefaultDueTime = v
	}
	if v := os.Getenv("TMX_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RefreshSeconds = n
		}
	}
	if v := os.Getenv("TMX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func finalize(cfg *Config) {
	if cfg.RefreshSeconds < minRefreshSeconds {
		cfg.RefreshSeconds = minRefreshSeconds
	}
	if cfg.RefreshSeconds > maxRefreshSeconds {
		cfg.RefreshSeconds = maxRefreshSeconds
	}
}
