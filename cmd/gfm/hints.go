package main

import (
	"errors"

	"github.com/alecthomas/chroma/v2/styles"

	gfm "github.com/alnah/go-gfm"
	"github.com/alnah/go-gfm/internal/assets"
	"github.com/alnah/go-gfm/internal/config"
	"github.com/alnah/go-gfm/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, config.ErrConfigParse):
		return hints.ForConfigParse()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, gfm.ErrUnknownStyle):
		return hints.ForHighlightStyle(styles.Names())
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForInvalidExtension()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
