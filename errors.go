package md2htmldoc

import (
	"errors"

	"github.com/alnah/go-md2htmldoc/internal/pipeline"
	"github.com/alnah/go-md2htmldoc/internal/theme"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownTheme   = theme.ErrUnknownTheme

	// Asset loading errors.
	ErrReadAsset        = errors.New("failed to read asset")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
