package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		want    string
	}{
		{"render", "Usage: gfm render"},
		{"preprocess", "Usage: gfm preprocess"},
		{"css", "Usage: gfm css"},
		{"config", "Usage: gfm config"},
		{"completion", "Usage: gfm completion"},
		{"version", "Usage: gfm version"},
		{"help", "Usage: gfm help"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("", nil)
			if code := runHelp([]string{tt.command}, env); code != ExitSuccess {
				t.Errorf("runHelp() = %d, want %d", code, ExitSuccess)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr.String())
			}
		})
	}
}

func TestUsageListsEveryCommand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, cmd := range getCommands() {
		if !strings.Contains(buf.String(), "  "+cmd.Name) {
			t.Errorf("usage missing command %q", cmd.Name)
		}
	}
}

func TestCommandUsageMentionsSharedFlags(t *testing.T) {
	t.Parallel()

	for name, usage := range map[string]func(w *bytes.Buffer){
		"render":     func(w *bytes.Buffer) { printRenderUsage(w) },
		"preprocess": func(w *bytes.Buffer) { printPreprocessUsage(w) },
		"css":        func(w *bytes.Buffer) { printCSSUsage(w) },
		"config":     func(w *bytes.Buffer) { printConfigUsage(w) },
	} {
		var buf bytes.Buffer
		usage(&buf)
		for _, flag := range []string{"--config-dir", "--env", "--log-level", "GFM_ENV"} {
			if !strings.Contains(buf.String(), flag) {
				t.Errorf("%s usage missing %s", name, flag)
			}
		}
	}
}
