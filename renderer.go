package gfm

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-gfm/internal/logging"
	"github.com/alnah/go-gfm/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.DialectPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Renderer runs the dialect preprocessor and the Markdown renderer.
// Create with NewRenderer.
type Renderer struct {
	cfg           RendererConfig
	logger        *log.Logger
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
}

// NewRenderer creates a Renderer from DefaultRendererConfig and opts.
// Returns an error if the resulting configuration is invalid.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{cfg: DefaultRendererConfig()}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if r.logger == nil {
		r.logger = logging.Default()
	}

	r.preprocessor = pipeline.NewDialectPreprocessor(nil)
	r.htmlConverter = pipeline.NewGoldmarkConverter(r.cfg.converterConfig())
	r.cssInjector = &pipeline.CSSInjection{}
	return r, nil
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.cfg
}

// Render preprocesses and renders text. A nil text returns nil, nil.
func (r *Renderer) Render(ctx context.Context, text *string) (*string, error) {
	if text == nil {
		return nil, nil
	}
	out, err := r.RenderString(ctx, *text)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RenderString preprocesses and renders text to an HTML fragment.
// Recovers from internal panics so they reach callers as ErrInternal.
func (r *Renderer) RenderString(ctx context.Context, text string) (html string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	md := r.preprocessor.PreprocessMarkdown(ctx, text)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	html, err = r.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	r.logger.Debug("rendered markdown", "input_bytes", len(text), "output_bytes", len(html))
	return html, nil
}

// Preprocess applies the dialect rewrites only and returns Markdown.
func (r *Renderer) Preprocess(ctx context.Context, text string) string {
	return r.preprocessor.PreprocessMarkdown(ctx, text)
}

// Stylesheet returns the CSS for the configured highlight style.
func (r *Renderer) Stylesheet() (string, error) {
	return pipeline.Stylesheet(r.cfg.HighlightStyle)
}

// Document wraps a rendered fragment into a standalone HTML5 document and
// embeds css, if any, in its head.
func (r *Renderer) Document(ctx context.Context, fragment, css string) (string, error) {
	doc, err := pipeline.WrapDocument(ctx, fragment)
	if err != nil {
		return "", err
	}
	return r.cssInjector.InjectCSS(ctx, doc, css), nil
}

// Preprocess applies the dialect rewrites to text with the default
// patterns. It never fails.
func Preprocess(text string) string {
	return pipeline.NewDialectPreprocessor(nil).PreprocessMarkdown(context.Background(), text)
}
