package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvAuditDB, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Username != "User" {
		t.Errorf("Expected username 'User', got %s", cfg.Username)
	}
	if cfg.AuditEnabled() {
		t.Error("Expected auditing disabled by default")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, "config.yaml", "username: alice\naudit_db: /tmp/a.db\nlog_level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Username != "alice" || cfg.AuditDB != "/tmp/a.db" || cfg.LogLevel != "debug" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Expected default log format to survive, got %s", cfg.LogFormat)
	}
}

func TestLoadTOML(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, "config.toml", "username = \"bob\"\nlog_format = \"json\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Username != "bob" || cfg.LogFormat != "json" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadDefaultPathFile(t *testing.T) {
	isolateHome(t)
	dir := filepath.Join(os.Getenv("HOME"), ".taskmemo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("username: carol\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Username != "carol" {
		t.Errorf("Expected username carol, got %s", cfg.Username)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, "config.yaml", "username: alice\n")
	t.Setenv(EnvUsername, "dave")
	t.Setenv(EnvAuditDB, "/tmp/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Username != "dave" {
		t.Errorf("Expected env username dave, got %s", cfg.Username)
	}
	if cfg.AuditDB != "/tmp/env.db" {
		t.Errorf("Expected env audit db, got %s", cfg.AuditDB)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolateHome(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, "config.ini", "username=x\n")

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, "config.yaml", "username: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
