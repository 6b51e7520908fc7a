// Package config loads taskmemo settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvUsername = "TASKMEMO_USER"
	EnvAuditDB  = "TASKMEMO_AUDIT_DB"
	EnvLogLevel = "TASKMEMO_LOG_LEVEL"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds taskmemo settings.
type Config struct {
	// Username is shown in task listings.
	Username string `yaml:"username" toml:"username"`
	// AuditDB is the SQLite audit journal path. Empty disables auditing.
	AuditDB string `yaml:"audit_db" toml:"audit_db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// LogFormat is one of text, logfmt, json.
	LogFormat string `yaml:"log_format" toml:"log_format"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Username:  "User",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// DefaultPath returns ~/.taskmemo/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taskmemo", "config.yaml")
}

// Load builds the configuration from defaults, the config file and the
// environment, in that order. An empty path means DefaultPath, which may be
// absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvAuditDB); v != "" {
		cfg.AuditDB = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// AuditEnabled reports whether an audit database is configured.
func (c *Config) AuditEnabled() bool {
	return c.AuditDB != ""
}
