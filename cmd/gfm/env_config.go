package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-gfm/internal/config"
	"github.com/alnah/go-gfm/internal/logging"
)

// envPrefix is shared by every variable the CLI reads.
const envPrefix = "GFM_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	Env       string // GFM_ENV: settings overlay name
	ConfigDir string // GFM_CONFIG_DIR: directory holding settings.yaml
	LogLevel  string // GFM_LOG_LEVEL: debug, info, warn, error
	OutputDir string // GFM_OUTPUT_DIR: default output directory
	Style     string // GFM_STYLE: page style name
	StyleDir  string // GFM_STYLE_DIR: custom style directory
	Workers   int    // GFM_WORKERS: parallel workers
}

// knownEnvVars lists valid GFM_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"GFM_ENV":        true,
	"GFM_CONFIG_DIR": true,
	"GFM_LOG_LEVEL":  true,
	"GFM_OUTPUT_DIR": true,
	"GFM_STYLE":      true,
	"GFM_STYLE_DIR":  true,
	"GFM_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv. Unparsable worker
// counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		Env:       getenv("GFM_ENV"),
		ConfigDir: getenv("GFM_CONFIG_DIR"),
		LogLevel:  getenv("GFM_LOG_LEVEL"),
		OutputDir: getenv("GFM_OUTPUT_DIR"),
		Style:     getenv("GFM_STYLE"),
		StyleDir:  getenv("GFM_STYLE_DIR"),
	}

	if workers := getenv("GFM_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized GFM_* variable.
func warnUnknownEnvVars(logger *log.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", logging.FieldVariable, name)
		}
	}
}

// applyEnvConfig applies environment values on top of the file settings.
// Flags are merged afterwards, giving:
// CLI flags > env vars > overlay file > settings file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Output.Style = env.Style
	}
	if env.StyleDir != "" {
		cfg.Output.StyleDir = env.StyleDir
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
