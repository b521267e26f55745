package pipeline

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// Patterns holds the compiled expressions used by the dialect preprocessor.
// A Patterns value is never mutated after construction and may be shared
// by any number of goroutines.
type Patterns struct {
	// Fenced code block: ```lang\n...\n```
	fence *regexp.Regexp

	// Protected regions, in extraction order.
	preBlock   *regexp.Regexp
	inlineCode *regexp.Regexp

	// Sentinel runes already present in the input.
	literalSentinel *regexp.Regexp

	// foo_bar_baz outside indented code. Needs lookaround, hence regexp2.
	italics *regexp2.Regexp

	// Linear pre-check: a line the italics rule can match contains this.
	italicsCandidate *regexp.Regexp

	// Bare http(s) URL bounded by whitespace or line edges.
	nakedURL *regexp.Regexp

	// Line starting with a word character or '<', plus its trailing newlines.
	softNewline *regexp.Regexp
}

// italicsTimeout bounds one italics match. The pattern backtracks
// quadratically along a long word.
const italicsTimeout = 250 * time.Millisecond

// wordClass matches what \w means to regexp2.
const wordClass = `[\p{L}\p{Mn}\p{Nd}\p{Pc}]`

// NewPatterns compiles the preprocessor expressions.
// Panics if an expression fails to compile, which is a programming error.
func NewPatterns() *Patterns {
	italics := regexp2.MustCompile(`^(?! {4}|\t).*\w+(?<!_)_\w+_\w[\w_]*`, regexp2.Multiline)
	italics.MatchTimeout = italicsTimeout

	return &Patterns{
		fence:            regexp.MustCompile("(?ms)^```(.*?)\n(.*?)^```$"),
		preBlock:         regexp.MustCompile(`(?s)<pre>.*?</pre>`),
		inlineCode:       regexp.MustCompile("(?s)`.*?`"),
		literalSentinel:  regexp.MustCompile(`[\x{E000}-\x{E002}]`),
		italics:          italics,
		italicsCandidate: regexp.MustCompile(wordClass + "_" + wordClass + "+_" + wordClass),
		nakedURL:         regexp.MustCompile(`(?m)(^|\s)(https?://[:/.?=&;a-zA-Z0-9_-]+)(\s|$)`),
		softNewline:      regexp.MustCompile(`(?m)^[\p{L}\p{N}_<][^\n]*(\n+)`),
	}
}

// defaultPatterns is built once at package initialization.
var defaultPatterns = NewPatterns()

// DefaultPatterns returns the shared, process-wide pattern set.
func DefaultPatterns() *Patterns {
	return defaultPatterns
}
