package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for by Find
const FileName = "drills.toml"

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	// MaxPrecision bounds the number of decimals printed for perimeters
	MaxPrecision = 12
)

// Config represents the complete configuration for drills
type Config struct {
	LogLevel  string `toml:"log_level"`
	Precision int    `toml:"precision"`
	Format    string `toml:"format"`
	Color     string `toml:"color"`

	// Path of the file the configuration was read from, empty for defaults
	Source string `toml:"-"`
}

// Default returns the configuration used when no drills.toml exists
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Precision: 2,
		Format:    FormatText,
		Color:     ColorAuto,
	}
}

// Load finds drills.toml starting from dir and loads it.
// When no file is found the defaults are returned.
func Load(dir string) (*Config, error) {
	configPath, err := Find(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile reads the configuration from an explicit path
func LoadFile(path string) (*Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find searches for drills.toml from startPath upwards.
// The returned error wraps fs.ErrNotExist when no file is found.
func Find(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%s not found above %s: %w", FileName, absPath, fs.ErrNotExist)
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.LogLevel) {
	case "error", "warn", "info", "debug":
	default:
		problems = append(problems, fmt.Sprintf("log_level must be one of error, warn, info, debug (got %q)", c.LogLevel))
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		problems = append(problems, fmt.Sprintf("precision must be between 0 and %d (got %d)", MaxPrecision, c.Precision))
	}
	switch c.Format {
	case FormatText, FormatMarkdown:
	default:
		problems = append(problems, fmt.Sprintf("format must be %q or %q (got %q)", FormatText, FormatMarkdown, c.Format))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		problems = append(problems, fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}
