// Package config loads renderer and CLI settings from a base settings file
// plus an optional per-environment overlay.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-gfm/internal/logging"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config directory not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// SettingsFile is the base settings file name, loaded before any overlay.
const SettingsFile = "settings.yaml"

// Field length limits.
const (
	MaxClassLength = 64
	MaxStyleLength = 64
	MaxLevelLength = 10
	MaxNameLength  = 64
	MaxPathLength  = 4096
	MaxWorkers     = 64
)

// overlayFiles maps environment names to their overlay file.
var overlayFiles = map[string]string{
	"dev":         "development.yaml",
	"development": "development.yaml",
	"test":        "testing.yaml",
	"testing":     "testing.yaml",
	"prod":        "production.yaml",
	"production":  "production.yaml",
}

// Config holds all settings for rendering and the CLI.
type Config struct {
	Renderer RendererConfig `yaml:"renderer"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
	Workers  int            `yaml:"workers"` // 0 = auto
}

// RendererConfig mirrors the options of the Markdown renderer.
type RendererConfig struct {
	EscapeHTML     bool   `yaml:"escapeHTML"`
	XHTML          bool   `yaml:"xhtml"`
	HighlightClass string `yaml:"highlightClass"`
	HighlightStyle string `yaml:"highlightStyle"`
	Tables         bool   `yaml:"tables"`
	Strikethrough  bool   `yaml:"strikethrough"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source file
	Standalone bool   `yaml:"standalone"` // wrap fragments in a full document
	Stylesheet bool   `yaml:"stylesheet"` // embed highlight CSS in standalone documents
	Style      string `yaml:"style"`      // page style name, empty = none
	StyleDir   string `yaml:"styleDir"`   // directory holding styles/<name>.css
}

// LogConfig defines diagnostics options.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() *Config {
	return &Config{
		Renderer: RendererConfig{
			EscapeHTML:     true,
			HighlightClass: "syntax",
			HighlightStyle: "github",
		},
		Output: OutputConfig{Stylesheet: true, Style: "default"},
		Log:    LogConfig{Level: logging.LevelInfo},
	}
}

// Validate checks field lengths and ranges.
func (c *Config) Validate() error {
	if err := validateFieldLength("renderer.highlightClass", c.Renderer.HighlightClass, MaxClassLength); err != nil {
		return err
	}
	if err := validateFieldLength("renderer.highlightStyle", c.Renderer.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.styleDir", c.Output.StyleDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d (must be between 0 and %d)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadFile applies the settings in path on top of c. A missing file is not
// an error: a warning is logged and c is left unchanged.
func (c *Config) LoadFile(path string, logger *log.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("did not find settings file", logging.FieldPath, path)
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("empty settings file", logging.FieldPath, path)
		return nil
	}

	// Decode into a copy so a bad file leaves c untouched.
	next := *c
	if err := decodeStrict(data, &next); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	*c = next
	logger.Debug("loaded settings file", logging.FieldPath, path)
	return nil
}

// OverlayFile returns the overlay file name for an environment name.
// Names are matched case-insensitively; unknown names report false.
func OverlayFile(env string) (string, bool) {
	name, ok := overlayFiles[strings.ToLower(strings.TrimSpace(env))]
	return name, ok
}

// OverlayFileFromEnv resolves the environment name held by the environment
// variable varName, then its overlay file.
func OverlayFileFromEnv(varName string) (string, bool) {
	return OverlayFile(os.Getenv(varName))
}

// Init builds a Config from defaults, dir/settings.yaml, and the overlay
// file for env when env names a known environment. An empty dir means the
// current directory.
func Init(dir, env string, logger *log.Logger) (*Config, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, dir)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFile(filepath.Join(dir, SettingsFile), logger); err != nil {
		return nil, err
	}

	if env == "" {
		return cfg, nil
	}
	overlay, ok := OverlayFile(env)
	if !ok {
		logger.Warn("no settings overlay for environment", logging.FieldEnv, env)
		return cfg, nil
	}
	if err := cfg.LoadFile(filepath.Join(dir, overlay), logger); err != nil {
		return nil, err
	}
	return cfg, nil
}
