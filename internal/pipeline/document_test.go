package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "first h1",
			fragment: "<h1>Hello World</h1>\n<p>text</p>",
			expected: "Hello World",
		},
		{
			name:     "only the first h1",
			fragment: "<h1>One</h1><h1>Two</h1>",
			expected: "One",
		},
		{
			name:     "nested markup flattened",
			fragment: "<h1>The <code>gfm</code> <em>tool</em></h1>",
			expected: "The gfm tool",
		},
		{
			name:     "whitespace collapsed",
			fragment: "<h1>  Spaced\n  Title  </h1>",
			expected: "Spaced Title",
		},
		{
			name:     "h2 ignored",
			fragment: "<h2>Sub</h2><p>x</p>",
			expected: defaultTitle,
		},
		{
			name:     "empty h1 falls back",
			fragment: "<h1> </h1>",
			expected: defaultTitle,
		},
		{
			name:     "empty fragment",
			fragment: "",
			expected: defaultTitle,
		},
		{
			name:     "entities decoded",
			fragment: "<h1>a &amp; b</h1>",
			expected: "a & b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extractTitle(tt.fragment)
			if err != nil {
				t.Fatalf("extractTitle() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("extractTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWrapDocument(t *testing.T) {
	t.Parallel()

	fragment := "<h1>Tom &amp; Jerry</h1>\n<p>body</p>\n"
	got, err := WrapDocument(context.Background(), fragment)
	if err != nil {
		t.Fatalf("WrapDocument() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Tom &amp; Jerry</title>",
		"<body>\n" + fragment,
		"</html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("WrapDocument() missing %q\ngot: %s", want, got)
		}
	}
}

func TestWrapDocument_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := WrapDocument(ctx, "<p>x</p>"); !errors.Is(err, context.Canceled) {
		t.Errorf("WrapDocument() error = %v, want context.Canceled", err)
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
		{"mixed case", "</sTyLe>", `<\/sTyLe>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      "",
			expected: "<html><head></head><body>Hello</body></html>",
		},
		{
			name:     "injects before </head>",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      "body { color: red; }",
			expected: "<html><head><style>body { color: red; }</style>\n</head><body>Hello</body></html>",
		},
		{
			name:     "injects before </HEAD> mixed case",
			html:     "<html><HEAD></HEAD><body>Hello</body></html>",
			css:      "p{}",
			expected: "<html><HEAD><style>p{}</style>\n</HEAD><body>Hello</body></html>",
		},
		{
			name:     "prepends to bare fragment",
			html:     "<p>Hello</p>",
			css:      "p { color: blue; }",
			expected: "<style>p { color: blue; }</style>\n<p>Hello</p>",
		},
		{
			name:     "sanitizes CSS with closing tags",
			html:     "<p>x</p>",
			css:      "</style><script>alert(1)</script>",
			expected: "<style><\\/style><script>alert(1)<\\/script></style>\n<p>x</p>",
		},
	}

	injector := &CSSInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body>Hello</body></html>"
	got := (&CSSInjection{}).InjectCSS(ctx, html, "body { color: red; }")
	if got != html {
		t.Errorf("InjectCSS() with cancelled context should return HTML unchanged, got %q", got)
	}
}
