package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates the highlight style is not registered in chroma.
var ErrUnknownStyle = errors.New("unknown highlight style")

// ValidateStyle reports ErrUnknownStyle if name is not a chroma style.
func ValidateStyle(name string) error {
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return nil
}

// Stylesheet returns the CSS rules matching the class-based markup the
// highlighter emits for the named style.
func Stylesheet(name string) (string, error) {
	if err := ValidateStyle(name); err != nil {
		return "", err
	}

	var b strings.Builder
	formatter := html.New(html.WithClasses(true))
	if err := formatter.WriteCSS(&b, styles.Get(strings.ToLower(name))); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", name, err)
	}
	return b.String(), nil
}
