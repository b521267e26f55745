// Package gfm renders GitHub-flavored Markdown to HTML.
//
// # Quick Start
//
//	r, err := gfm.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := r.RenderString(ctx, "Hello\nworld with foo_bar_baz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Render accepts a *string so absent input can flow through unchanged:
// a nil input yields a nil output and no error.
//
// # Dialect
//
// Before rendering, the text is rewritten for a standard Markdown renderer:
//
//  1. CRLF input is normalized to LF and restored on output
//  2. ```lang fenced blocks become indented blocks tagged ":::lang"
//  3. <pre> blocks and `code` spans are set aside untouched
//  4. words like foo_bar_baz keep their underscores
//  5. bare http(s) URLs become links
//  6. a single newline after a text line becomes a hard line break
//
// Preprocess exposes this stage alone.
//
// # Rendering
//
// The renderer escapes raw HTML, emits HTML5, and highlights code blocks
// with chroma CSS classes inside <div class="syntax">. Use functional
// options to change any of these:
//
//	r, err := gfm.NewRenderer(
//	    gfm.WithHighlightStyle("monokai"),
//	    gfm.WithTables(true),
//	)
//
// Stylesheet returns the CSS matching the highlight classes, and Document
// wraps a rendered fragment into a standalone page titled after its first
// heading.
//
// A Renderer holds no mutable state and is safe for concurrent use.
package gfm
