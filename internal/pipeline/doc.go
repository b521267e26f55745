// Package pipeline implements the Markdown dialect preprocessing and
// Markdown-to-HTML conversion stages.
//
// Preprocessing rewrites GitHub-flavored Markdown for a standard renderer:
//   - line ending normalization (CRLF restored on output)
//   - ```lang fenced blocks to indented blocks with a ":::lang" marker
//   - protection of <pre> blocks and `code` spans from content rewrites
//   - foo_bar_baz underscore escaping
//   - bare URL auto-linking
//   - single newline to hard break promotion
//
// Conversion renders the result with goldmark: raw HTML is escaped by
// default and code blocks are highlighted with chroma CSS classes.
package pipeline
