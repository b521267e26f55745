package pipeline

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourceDir := filepath.Join(root, "docs")
	outputDir := filepath.Join(root, "site", "html")

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative image",
			html:         `<img src="images/logo.png">`,
			wantContains: []string{`src="../../docs/images/logo.png"`},
		},
		{
			name:         "relative image with dot slash",
			html:         `<img src="./images/logo.png">`,
			wantContains: []string{`src="../../docs/images/logo.png"`},
		},
		{
			name:         "parent directory reference",
			html:         `<img src="../shared/x.png">`,
			wantContains: []string{`src="../../shared/x.png"`},
		},
		{
			name:         "link keeps fragment and query",
			html:         `<a href="guide.html?v=2#setup">guide</a>`,
			wantContains: []string{`href="../../docs/guide.html?v=2#setup"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#top">top</a>`,
			wantContains: []string{`href="#top"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/abs/logo.png">`,
			wantContains: []string{`src="/abs/logo.png"`},
		},
		{
			name:         "http URL unchanged",
			html:         `<a href="http://example.com/a">x</a>`,
			wantContains: []string{`href="http://example.com/a"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:me@example.com">mail</a>`,
			wantContains: []string{`href="mailto:me@example.com"`},
		},
		{
			name:         "protocol-relative unchanged",
			html:         `<img src="//cdn.example.com/x.png">`,
			wantContains: []string{`src="//cdn.example.com/x.png"`},
		},
		{
			name:         "other elements untouched",
			html:         `<script src="app.js"></script><link href="style.css">`,
			wantContains: []string{`src="app.js"`, `href="style.css"`},
		},
		{
			name:         "fragment not wrapped in document",
			html:         `<p><img src="a.png"></p>`,
			wantContains: []string{`<p><img src="../../docs/a.png"/></p>`},
			wantExcludes: []string{"<html>", "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, sourceDir, outputDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestRewriteRelativePaths_Unchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := `<img src="a.png">`

	tests := []struct {
		name      string
		sourceDir string
		outputDir string
	}{
		{"empty source", "", dir},
		{"empty output", dir, ""},
		{"same directory", dir, dir + string(filepath.Separator)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(input, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if got != input {
				t.Errorf("RewriteRelativePaths() = %q, want input unchanged", got)
			}
		})
	}
}

func TestRewriteRelativePaths_FullDocument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	doc := "<!DOCTYPE html><html><head><title>x</title></head><body><img src=\"a.png\"></body></html>"

	got, err := RewriteRelativePaths(doc, filepath.Join(root, "src"), filepath.Join(root, "out"))
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>x</title>", `src="../src/a.png"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q\ngot: %s", want, got)
		}
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want bool
	}{
		{"img.png", true},
		{"./img.png", true},
		{"../img.png", true},
		{"dir/page.html#x", true},
		{"", false},
		{"#anchor", false},
		{"/abs.png", false},
		{"//cdn/x.png", false},
		{"https://x.io", false},
		{"data:image/png;base64,xx", false},
		{"mailto:a@b.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.ref); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
