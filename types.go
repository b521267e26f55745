package gfm

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-gfm/internal/pipeline"
)

// Renderer defaults.
const (
	DefaultHighlightClass = "syntax"
	DefaultHighlightStyle = "github"
)

// classPattern accepts one or more space-separated CSS class names.
var classPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*( -?[_a-zA-Z][_a-zA-Z0-9-]*)*$`)

// RendererConfig is the fixed option set of the Markdown renderer.
type RendererConfig struct {
	EscapeHTML     bool   // escape raw HTML instead of passing it through
	XHTML          bool   // self-closing void tags; false renders HTML5
	HighlightClass string // class of the div wrapping highlighted code
	HighlightStyle string // chroma style used by Stylesheet
	Tables         bool   // pipe tables
	Strikethrough  bool   // ~~deleted~~ text
}

// DefaultRendererConfig returns the default renderer settings: escaped raw
// HTML, HTML5 output, and the "syntax" highlight class.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		EscapeHTML:     true,
		HighlightClass: DefaultHighlightClass,
		HighlightStyle: DefaultHighlightStyle,
	}
}

// Validate checks the highlight class and style.
func (c RendererConfig) Validate() error {
	if !classPattern.MatchString(c.HighlightClass) {
		return fmt.Errorf("%w: %q", ErrInvalidHighlightClass, c.HighlightClass)
	}
	return pipeline.ValidateStyle(c.HighlightStyle)
}

func (c RendererConfig) converterConfig() pipeline.ConverterConfig {
	return pipeline.ConverterConfig{
		EscapeHTML:     c.EscapeHTML,
		XHTML:          c.XHTML,
		HighlightClass: c.HighlightClass,
		HighlightStyle: c.HighlightStyle,
		Tables:         c.Tables,
		Strikethrough:  c.Strikethrough,
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRendererConfig replaces the whole renderer configuration.
func WithRendererConfig(cfg RendererConfig) Option {
	return func(r *Renderer) {
		r.cfg = cfg
	}
}

// WithEscapeHTML sets whether raw HTML is escaped.
func WithEscapeHTML(escape bool) Option {
	return func(r *Renderer) {
		r.cfg.EscapeHTML = escape
	}
}

// WithXHTML sets whether void elements are self-closed.
func WithXHTML(xhtml bool) Option {
	return func(r *Renderer) {
		r.cfg.XHTML = xhtml
	}
}

// WithHighlightClass sets the class of the div wrapping code blocks.
func WithHighlightClass(class string) Option {
	return func(r *Renderer) {
		r.cfg.HighlightClass = class
	}
}

// WithHighlightStyle sets the chroma style name.
func WithHighlightStyle(style string) Option {
	return func(r *Renderer) {
		r.cfg.HighlightStyle = style
	}
}

// WithTables enables pipe tables.
func WithTables(enabled bool) Option {
	return func(r *Renderer) {
		r.cfg.Tables = enabled
	}
}

// WithStrikethrough enables ~~strikethrough~~.
func WithStrikethrough(enabled bool) Option {
	return func(r *Renderer) {
		r.cfg.Strikethrough = enabled
	}
}

// WithLogger sets the logger used for debug diagnostics.
// Panics if logger is nil (programmer error).
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic("gfm: WithLogger logger must not be nil")
	}
	return func(r *Renderer) {
		r.logger = logger
	}
}
