package pipeline

import (
	"strings"
	"testing"
	"time"
)

func TestEscapeIntraWordUnderscores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "three part word",
			input:    "foo_bar_baz",
			expected: `foo\_bar\_baz`,
		},
		{
			name:     "word inside sentence",
			input:    "call my_func_name now",
			expected: `call my\_func\_name now`,
		},
		{
			name:     "single underscore unchanged",
			input:    "foo_bar",
			expected: "foo_bar",
		},
		{
			name:     "http URL unchanged",
			input:    "http://example.com/a_b_c",
			expected: "http://example.com/a_b_c",
		},
		{
			name:     "https URL unchanged",
			input:    "see https://example.com/x_y_z",
			expected: "see https://example.com/x_y_z",
		},
		{
			name:     "space indented code line unchanged",
			input:    "    foo_bar_baz",
			expected: "    foo_bar_baz",
		},
		{
			name:     "tab indented code line unchanged",
			input:    "\tfoo_bar_baz",
			expected: "\tfoo_bar_baz",
		},
		{
			name:     "each line handled separately",
			input:    "one_two_three\n    four_five_six\nseven",
			expected: "one\\_two\\_three\n    four_five_six\nseven",
		},
		{
			name:     "unicode word characters",
			input:    "café_crème_brûlée",
			expected: `café\_crème\_brûlée`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "trailing underscore only",
			input:    "name_",
			expected: "name_",
		},
		{
			name:     "only the matching line changes",
			input:    "plain text\nfoo_bar_baz\nsolo_word",
			expected: "plain text\nfoo\\_bar\\_baz\nsolo_word",
		},
	}

	p := DefaultPatterns()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := escapeIntraWordUnderscores(p, tt.input)
			if got != tt.expected {
				t.Errorf("escapeIntraWordUnderscores() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEscapeIntraWordUnderscores_LongWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"single trailing underscore", strings.Repeat("a", 20000) + "_"},
		{"underscores only at the start", "a_a_" + strings.Repeat("a", 50000)},
		{"many long lines", strings.Repeat(strings.Repeat("b", 5000)+"_\n", 20)},
	}

	p := DefaultPatterns()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			got := escapeIntraWordUnderscores(p, tt.input)
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("escapeIntraWordUnderscores() took %v", elapsed)
			}
			if len(got) < len(tt.input) {
				t.Errorf("escapeIntraWordUnderscores() dropped content: %d < %d bytes", len(got), len(tt.input))
			}
		})
	}
}

func TestLinkifyNakedURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "URL between words",
			input:    "see http://example.com for info",
			expected: "see [http://example.com](http://example.com) for info",
		},
		{
			name:     "URL alone",
			input:    "https://example.com/path?q=1&r=2",
			expected: "[https://example.com/path?q=1&r=2](https://example.com/path?q=1&r=2)",
		},
		{
			name:     "URL at line start",
			input:    "intro\nhttp://a.io\noutro",
			expected: "intro\n[http://a.io](http://a.io)\noutro",
		},
		{
			name:     "trailing punctuation prevents linking",
			input:    "see http://example.com, ok",
			expected: "see http://example.com, ok",
		},
		{
			name:     "parenthesized URL unchanged",
			input:    "(http://example.com)",
			expected: "(http://example.com)",
		},
		{
			name:     "existing markdown link unchanged",
			input:    "[site](http://example.com)",
			expected: "[site](http://example.com)",
		},
		{
			name:     "ftp scheme unchanged",
			input:    "ftp://example.com",
			expected: "ftp://example.com",
		},
		{
			name:     "tab separators preserved",
			input:    "a\thttp://x.io\tb",
			expected: "a\t[http://x.io](http://x.io)\tb",
		},
	}

	re := DefaultPatterns().nakedURL
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := linkifyNakedURLs(re, tt.input)
			if got != tt.expected {
				t.Errorf("linkifyNakedURLs() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPromoteSoftNewlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single newline promoted",
			input:    "hello\nworld",
			expected: "hello  \nworld",
		},
		{
			name:     "blank line unchanged",
			input:    "hello\n\nworld",
			expected: "hello\n\nworld",
		},
		{
			name:     "every line of a block promoted",
			input:    "a\nb\nc",
			expected: "a  \nb  \nc",
		},
		{
			name:     "trailing spaces replaced",
			input:    "hello   \nworld",
			expected: "hello  \nworld",
		},
		{
			name:     "html line promoted",
			input:    "<b>x</b>\ny",
			expected: "<b>x</b>  \ny",
		},
		{
			name:     "list item unchanged",
			input:    "- one\n- two",
			expected: "- one\n- two",
		},
		{
			name:     "indented line unchanged",
			input:    "    code\nmore",
			expected: "    code\nmore",
		},
		{
			name:     "heading unchanged",
			input:    "# Title\ntext",
			expected: "# Title\ntext",
		},
		{
			name:     "unicode letter start",
			input:    "été\nhiver",
			expected: "été  \nhiver",
		},
		{
			name:     "final newline promoted",
			input:    "last\n",
			expected: "last  \n",
		},
	}

	re := DefaultPatterns().softNewline
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := promoteSoftNewlines(re, tt.input)
			if got != tt.expected {
				t.Errorf("promoteSoftNewlines() = %q, want %q", got, tt.expected)
			}
		})
	}
}
