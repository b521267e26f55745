package pipeline

import (
	"regexp"
	"strings"
)

const (
	codeIndent     = "    "
	languageMarker = ":::"
)

// convertFences rewrites ```lang fenced blocks into 4-space indented blocks.
// A language tag becomes a leading "    :::lang" line, which the renderer's
// highlighter understands. The closing fence line is dropped.
func convertFences(re *regexp.Regexp, content string) string {
	return replaceAllSubmatchFunc(re, content, func(groups []string) string {
		language, code := groups[1], groups[2]

		var b strings.Builder
		if language != "" {
			b.WriteString(codeIndent + languageMarker + language + "\n")
		}

		// The last element is what follows the final newline before the
		// closing fence, i.e. always empty.
		lines := strings.Split(code, "\n")
		for i, line := range lines[:len(lines)-1] {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(codeIndent + line)
		}
		return b.String()
	})
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to submatches.
// Unmatched optional groups are passed as empty strings.
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if start, end := loc[2*g], loc[2*g+1]; start >= 0 {
				groups[g] = s[start:end]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
