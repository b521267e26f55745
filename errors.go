package gfm

import (
	"errors"

	"github.com/alnah/go-gfm/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownStyle   = pipeline.ErrUnknownStyle

	// Renderer configuration errors.
	ErrInvalidHighlightClass = errors.New("invalid highlight class")

	// ErrInternal wraps a panic recovered during rendering.
	ErrInternal = errors.New("internal error")
)
