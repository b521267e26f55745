package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// regionKind identifies a class of protected region. Kinds are extracted in
// declaration order, so a region may enclose sentinels of earlier kinds.
type regionKind int

const (
	kindLiteral regionKind = iota // sentinel runes found verbatim in the input
	kindPre                       // <pre>...</pre>
	kindInline                    // `code`
	numKinds
)

// Sentinels use Unicode Private Use Area characters: no rewrite rule treats
// them as word, space or URL characters, so they pass through unchanged.
var sentinels = [numKinds]rune{
	kindLiteral: '\uE002',
	kindPre:     '\uE000',
	kindInline:  '\uE001',
}

// ledger records the originals of protected regions, per kind, in the order
// they were captured. The i-th sentinel of a kind in the working text pairs
// with the i-th original of that kind.
type ledger struct {
	regions  [numKinds][]string
	sentinel *regexp.Regexp
}

// protect replaces literal sentinels, then <pre> blocks, then inline code
// spans with sentinel runes. Each pattern is scanned once.
func protect(p *Patterns, content string) (string, *ledger) {
	l := &ledger{sentinel: p.literalSentinel}
	content, l.regions[kindLiteral] = extract(p.literalSentinel, content, sentinels[kindLiteral])
	content, l.regions[kindPre] = extract(p.preBlock, content, sentinels[kindPre])
	content, l.regions[kindInline] = extract(p.inlineCode, content, sentinels[kindInline])
	return content, l
}

// extract substitutes one sentinel for every match of re, left to right,
// and returns the matched substrings in discovery order.
func extract(re *regexp.Regexp, content string, sentinel rune) (string, []string) {
	matches := re.FindAllStringIndex(content, -1)
	if matches == nil {
		return content, nil
	}

	originals := make([]string, 0, len(matches))
	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, loc := range matches {
		originals = append(originals, content[loc[0]:loc[1]])
		b.WriteString(content[last:loc[0]])
		b.WriteRune(sentinel)
		last = loc[1]
	}
	b.WriteString(content[last:])
	return b.String(), originals
}

// len returns the total number of captured regions.
func (l *ledger) len() int {
	n := 0
	for _, r := range l.regions {
		n += len(r)
	}
	return n
}

// restore puts every captured region back in place of its sentinel.
func (l *ledger) restore(content string) string {
	if l.len() == 0 {
		return content
	}
	var next [numKinds]int
	var b strings.Builder
	b.Grow(len(content))
	l.expand(&b, content, &next)
	return b.String()
}

// expand writes s with sentinels replaced by their originals. Originals may
// themselves hold sentinels of earlier kinds; expanding them in place keeps
// every kind consumed in document order, which is its capture order.
func (l *ledger) expand(b *strings.Builder, s string, next *[numKinds]int) {
	last := 0
	for _, loc := range l.sentinel.FindAllStringIndex(s, -1) {
		b.WriteString(s[last:loc[0]])
		last = loc[1]

		r, _ := utf8.DecodeRuneInString(s[loc[0]:loc[1]])
		kind := kindOf(r)
		if kind < 0 || next[kind] >= len(l.regions[kind]) {
			// Not produced by protect; leave it alone.
			b.WriteString(s[loc[0]:loc[1]])
			continue
		}

		original := l.regions[kind][next[kind]]
		next[kind]++
		if kind == kindLiteral {
			b.WriteString(original)
			continue
		}
		l.expand(b, original, next)
	}
	b.WriteString(s[last:])
}

func kindOf(r rune) regionKind {
	for k, s := range sentinels {
		if s == r {
			return regionKind(k)
		}
	}
	return -1
}
