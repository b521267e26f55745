// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// maxListed bounds how many names a hint enumerates.
const maxListed = 12

// ForConfigNotFound returns hints for a missing settings directory.
func ForConfigNotFound() string {
	return format("point --config-dir or GFM_CONFIG_DIR at a directory holding settings.yaml")
}

// ForConfigParse returns a hint for settings files that fail to decode.
func ForConfigParse() string {
	return format("run 'gfm config' to see the accepted keys")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for page style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or use --style-dir")
}

// ForHighlightStyle returns hints for unknown chroma styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(available) > maxListed {
		return format("try one of: " + strings.Join(available[:maxListed], ", ") + ", ...")
	}
	return format("try one of: " + strings.Join(available, ", "))
}

// ForInvalidExtension returns a hint for inputs that are not Markdown files.
func ForInvalidExtension() string {
	return format("inputs must end in .md or .markdown; pass a directory to scan it")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
