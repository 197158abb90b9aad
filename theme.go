package md2htmldoc

import "github.com/alnah/go-md2htmldoc/internal/theme"

// Theme is a syntax highlighting theme selection.
// Obtain bundled themes with Converter.ParseTheme.
type Theme = theme.Theme

// Theme variants that need no catalog lookup.
var (
	ThemeUnset    = theme.Unset
	ThemeNone     = theme.None
	ThemeReserved = theme.Reserved
)

// Reserved theme names.
const (
	ThemeNoneName     = theme.NoneName
	ThemeReservedName = theme.ReservedName
)
