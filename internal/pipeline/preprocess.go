package pipeline

import "context"

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// DialectPreprocessor rewrites GitHub-flavored Markdown into input a
// standard Markdown renderer accepts. It holds no mutable state and is safe
// for concurrent use.
type DialectPreprocessor struct {
	patterns *Patterns
}

// NewDialectPreprocessor creates a DialectPreprocessor using the given
// patterns, or the shared default set when p is nil.
func NewDialectPreprocessor(p *Patterns) *DialectPreprocessor {
	if p == nil {
		p = DefaultPatterns()
	}
	return &DialectPreprocessor{patterns: p}
}

// PreprocessMarkdown applies all dialect transformations.
// Order matters: line endings first, fences before protection (the fence
// markers are backticks), protection before any content rewrite, and
// CRLF restored only once everything else is done.
func (p *DialectPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content, usedCRLF := normalizeLineEndings(content)
	content = convertFences(p.patterns.fence, content)

	content, regions := protect(p.patterns, content)
	content = escapeIntraWordUnderscores(p.patterns, content)
	content = linkifyNakedURLs(p.patterns.nakedURL, content)
	content = promoteSoftNewlines(p.patterns.softNewline, content)
	content = regions.restore(content)

	if usedCRLF {
		content = denormalizeLineEndings(content)
	}
	return content
}
