package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestLoadDefaults verifies built-in defaults apply without a config file.
func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnv, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

// TestLoadSearchesConfigDir verifies quizkit.yml is found under ./config.
func TestLoadSearchesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnv, "")
	if err := os.MkdirAll(filepath.Join(dir, ConfigDirName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := "output_format: json\nreport_title: \"  Week 3 \"\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigDirName, ConfigFileName), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputFormat != "json" {
		t.Fatalf("expected json output, got %q", cfg.OutputFormat)
	}
	if cfg.ReportTitle != "Week 3" {
		t.Fatalf("expected trimmed title, got %q", cfg.ReportTitle)
	}
}

// TestLoadEnvOverrides verifies QUIZKIT_* variables win over the file.
func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yml")
	if err := os.WriteFile(path, []byte("log_level: info\nui_mode: live\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("QUIZKIT_LOG_LEVEL", "DEBUG")
	t.Setenv("QUIZKIT_NO_COLOR", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected env log level, got %q", cfg.LogLevel)
	}
	if cfg.UIMode != "live" {
		t.Fatalf("expected file ui mode, got %q", cfg.UIMode)
	}
	if !cfg.NoColor {
		t.Fatalf("expected no_color from env")
	}
}

// TestLoadRejectsInvalidValues verifies enumerated settings are validated.
func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizkit.yml")
	if err := os.WriteFile(path, []byte("output_format: xml\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "output_format") {
		t.Fatalf("expected output_format in error, got %q", err.Error())
	}
}

// TestLoadMissingExplicitFile verifies a named file must exist.
func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
