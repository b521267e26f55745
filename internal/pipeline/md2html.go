package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ConverterConfig is the fixed option set of the Markdown renderer.
type ConverterConfig struct {
	EscapeHTML     bool   // escape raw HTML instead of passing it through
	XHTML          bool   // self-closing tags; false renders HTML5
	HighlightClass string // class of the div wrapping highlighted code
	HighlightStyle string // chroma style name
	Tables         bool
	Strikethrough  bool
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter from cfg.
func NewGoldmarkConverter(cfg ConverterConfig) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		&codeHilite{class: cfg.HighlightClass, style: cfg.HighlightStyle},
	}
	if cfg.Tables {
		extensions = append(extensions, extension.Table)
	}
	if cfg.Strikethrough {
		extensions = append(extensions, extension.Strikethrough)
	}

	var rendererOpts []renderer.Option
	if cfg.EscapeHTML {
		rendererOpts = append(rendererOpts, renderer.WithNodeRenderers(
			util.Prioritized(&rawHTMLEscaper{}, 100),
		))
	} else {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}
	if cfg.XHTML {
		rendererOpts = append(rendererOpts, html.WithXHTML())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	// Buffered: on cancellation the goroutine runs to completion and exits
	// without a reader.
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
