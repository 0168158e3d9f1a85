package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Precision != 2 {
		t.Errorf("Expected precision 2, got %d", cfg.Precision)
	}
	if cfg.Format != FormatText {
		t.Errorf("Expected format 'text', got '%s'", cfg.Format)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Expected color 'auto', got '%s'", cfg.Color)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.Source != "" {
		t.Errorf("Expected no source, got '%s'", cfg.Source)
	}
}

func TestLoadFromParentDirectory(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
precision = 4
format = "markdown"
`)

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create directories: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Precision != 4 {
		t.Errorf("Expected precision 4, got %d", cfg.Precision)
	}
	if cfg.Format != FormatMarkdown {
		t.Errorf("Expected format 'markdown', got '%s'", cfg.Format)
	}
	// Unset keys keep their defaults
	if cfg.Color != ColorAuto {
		t.Errorf("Expected color 'auto', got '%s'", cfg.Color)
	}
	if cfg.Source != path {
		t.Errorf("Expected source '%s', got '%s'", path, cfg.Source)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
log_level = "loud"
precision = 20
format = "html"
color = "sometimes"
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, field := range []string{"log_level", "precision", "format", "color"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Expected error to mention %s, got: %v", field, err)
		}
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `precision = "two"`)

	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestFindNotExist(t *testing.T) {
	_, err := Find(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
