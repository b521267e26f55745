package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// escapeIntraWordUnderscores prevents foo_bar_baz from rendering with an
// italic "bar". Lines indented as code are skipped by the pattern itself,
// and runs that look like URLs are left as they are.
// Only lines passing the linear pre-check reach regexp2. A line whose match
// fails or times out is returned unchanged.
func escapeIntraWordUnderscores(p *Patterns, content string) string {
	if !p.italicsCandidate.MatchString(content) {
		return content
	}

	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		if p.italicsCandidate.MatchString(line) {
			lines[i] = escapeLine(p.italics, line)
		}
	}
	return strings.Join(lines, "")
}

func escapeLine(re *regexp2.Regexp, line string) string {
	out, err := re.ReplaceFunc(line, func(m regexp2.Match) string {
		s := m.String()
		if strings.Contains(s, "http:") || strings.Contains(s, "https:") {
			return s
		}
		return strings.ReplaceAll(s, "_", `\_`)
	}, -1, -1)
	if err != nil {
		return line
	}
	return out
}

// linkifyNakedURLs wraps bare URLs in Markdown link syntax:
// http://foo -> [http://foo](http://foo). The surrounding whitespace is kept.
func linkifyNakedURLs(re *regexp.Regexp, content string) string {
	return re.ReplaceAllString(content, "${1}[${2}](${2})${3}")
}

// promoteSoftNewlines turns a single newline after a text line into a hard
// break ("  \n"). Paragraph breaks (two or more newlines) are left alone.
func promoteSoftNewlines(re *regexp.Regexp, content string) string {
	return re.ReplaceAllStringFunc(content, func(m string) string {
		if len(m)-len(strings.TrimRight(m, "\n")) != 1 {
			return m
		}
		return strings.TrimRightFunc(m, unicode.IsSpace) + "  \n"
	})
}
