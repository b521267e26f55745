package pipeline

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// codeHilite wraps every code block in <div class="...">. Fenced blocks
// with a language and indented blocks whose first line is a ":::lang"
// marker are highlighted too.
type codeHilite struct {
	class string
	style string
}

// Extend implements goldmark.Extender.
func (e *codeHilite) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&languageMarkerTransformer{}, 100),
	))
	highlighting.NewHighlighting(
		highlighting.WithStyle(e.style),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true), // CSS classes; see Stylesheet
		),
		highlighting.WithWrapperRenderer(e.wrap),
	).Extend(m)
}

// wrap opens and closes the wrapper div. Blocks the highlighter could not
// handle (unknown language) still need their own <pre><code>.
func (e *codeHilite) wrap(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="`)
		_, _ = w.Write(util.EscapeHTML([]byte(e.class)))
		_, _ = w.WriteString(`">`)
		if !ctx.Highlighted() {
			_, _ = w.WriteString("<pre><code>")
		}
		return
	}
	if !ctx.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}

// languageMarkerTransformer replaces indented code blocks by fenced code
// blocks, tagged with lang when the first line is a ":::lang" marker, so the
// highlighter renders every block the same way.
type languageMarkerTransformer struct{}

// Transform implements parser.ASTTransformer.
func (t *languageMarkerTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	// Collect first: replacing nodes while walking would break the walk.
	var blocks []*ast.CodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if cb, ok := n.(*ast.CodeBlock); ok && entering {
			blocks = append(blocks, cb)
		}
		return ast.WalkContinue, nil
	})

	for _, cb := range blocks {
		fenced := fencedFromMarker(cb, source)
		if fenced == nil {
			fenced = ast.NewFencedCodeBlock(nil)
			fenced.SetLines(cb.Lines())
		}
		parent := cb.Parent()
		parent.ReplaceChild(parent, cb, fenced)
	}
}

// fencedFromMarker returns nil when cb has no language marker.
func fencedFromMarker(cb *ast.CodeBlock, source []byte) *ast.FencedCodeBlock {
	lines := cb.Lines()
	if lines.Len() == 0 {
		return nil
	}

	first := lines.At(0)
	raw := source[first.Start:first.Stop]
	if !bytes.HasPrefix(raw, []byte(languageMarker)) {
		return nil
	}
	lang := bytes.TrimRight(raw[len(languageMarker):], " \t\r\n")
	if len(lang) == 0 {
		return nil
	}

	start := first.Start + len(languageMarker)
	fenced := ast.NewFencedCodeBlock(ast.NewTextSegment(text.NewSegment(start, start+len(lang))))

	body := text.NewSegments()
	for i := 1; i < lines.Len(); i++ {
		body.Append(lines.At(i))
	}
	fenced.SetLines(body)
	return fenced
}
