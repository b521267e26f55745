package logging_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-gfm/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning alias", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}
			if got := logger.GetLevel(); got != tt.expected {
				t.Errorf("level = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if _, err := logging.ParseLevel(" Warn "); err != nil {
		t.Errorf("ParseLevel(\" Warn \") error = %v", err)
	}
	if _, err := logging.ParseLevel("loud"); !errors.Is(err, logging.ErrInvalidLevel) {
		t.Errorf("ParseLevel(\"loud\") error = %v, want ErrInvalidLevel", err)
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("settings file not found", logging.FieldPath, "settings.yaml")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "settings file not found") || !strings.Contains(out, "settings.yaml") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestSetDefault(t *testing.T) {
	// Not parallel: modifies the package-level logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	replacement := logging.New("error")
	logging.SetDefault(replacement)
	if logging.Default() != replacement {
		t.Error("SetDefault did not change the default logger")
	}

	logging.SetLevel("debug")
	if got := logging.Default().GetLevel(); got != log.DebugLevel {
		t.Errorf("SetLevel(debug) level = %v", got)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)
	if logging.FromContext(ctx) != logger {
		t.Error("FromContext did not return the attached logger")
	}
	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext without logger returned nil")
	}
}
