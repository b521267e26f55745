package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{"github", "github", nil},
		{"case insensitive", "Monokai", nil},
		{"unknown", "no-such-style", ErrUnknownStyle},
		{"empty", "", ErrUnknownStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("known style", func(t *testing.T) {
		t.Parallel()

		css, err := Stylesheet("github")
		if err != nil {
			t.Fatalf("Stylesheet() error = %v", err)
		}
		for _, want := range []string{".chroma", "{", "}"} {
			if !strings.Contains(css, want) {
				t.Errorf("Stylesheet() missing %q", want)
			}
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		if _, err := Stylesheet("no-such-style"); !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("Stylesheet() error = %v, want ErrUnknownStyle", err)
		}
	})
}
