package main

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_gfm_completions",
				"complete -F _gfm_completions gfm",
				"compgen",
				"render)",
				"--output|-o)",
				"--highlight-style",
				"monokai",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef gfm",
				"_describe 'command' commands",
				"_arguments",
				"'render:Render markdown files to HTML'",
				"'(-o --output)'{-o,--output}",
				"_files -/",
				"compdef _gfm gfm",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c gfm",
				"__fish_gfm_needs_command",
				"__fish_gfm_using_command render",
				"-s o -l output",
				"-l log-level",
				"__fish_complete_suffix .md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, cmd := range getCommands() {
				if !strings.Contains(out, cmd.Name) {
					t.Errorf("output missing command %q", cmd.Name)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, Shell("tcsh"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("error = %v, want ErrUnsupportedShell", err)
	}
	if !strings.Contains(err.Error(), "tcsh") {
		t.Errorf("error %q should name the shell", err)
	}
}

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{}))
	byName := make(map[string]flagDef, len(flags))
	for _, f := range flags {
		byName[f.Long] = f
	}

	tests := []struct {
		name      string
		wantShort string
		wantType  flagType
	}{
		{"output", "o", flagDir},
		{"workers", "w", flagInt},
		{"standalone", "s", flagBool},
		{"stdout", "", flagBool},
		{"highlight-class", "", flagString},
		{"highlight-style", "", flagEnum},
		{"style", "", flagEnum},
		{"style-dir", "", flagDir},
		{"config-dir", "", flagDir},
		{"env", "e", flagEnum},
		{"log-level", "", flagEnum},
	}

	for _, tt := range tests {
		f, ok := byName[tt.name]
		if !ok {
			t.Errorf("flag --%s not found", tt.name)
			continue
		}
		if f.Short != tt.wantShort {
			t.Errorf("flag --%s: short = %q, want %q", tt.name, f.Short, tt.wantShort)
		}
		if f.Type != tt.wantType {
			t.Errorf("flag --%s: type = %v, want %v", tt.name, f.Type, tt.wantType)
		}
	}

	if got := byName["style"].Values; len(got) == 0 || !slices.Contains(got, "default") {
		t.Errorf("style values = %v, want embedded style names", got)
	}
	if got := byName["highlight-style"].Values; !slices.Contains(got, "github") {
		t.Errorf("highlight-style values missing github")
	}
}

func TestPrintCompletionUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printCompletionUsage(&buf)

	for _, want := range []string{"Usage: gfm completion", "bash", "zsh", "fish", "Installation"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("completion usage missing %q", want)
		}
	}
}
