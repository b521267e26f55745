package pipeline

import "strings"

// normalizeLineEndings converts \r\n to \n when the content contains any \r.
// The returned flag records whether CRLF output must be restored at the end.
func normalizeLineEndings(content string) (string, bool) {
	if !strings.Contains(content, "\r") {
		return content, false
	}
	return strings.ReplaceAll(content, "\r\n", "\n"), true
}

// denormalizeLineEndings converts every \n back to \r\n.
func denormalizeLineEndings(content string) string {
	return strings.ReplaceAll(content, "\n", "\r\n")
}
