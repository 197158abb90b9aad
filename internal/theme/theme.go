// Package theme resolves syntax-highlighting theme names to stylesheets.
//
// A Theme is a closed set of variants: Unset (nothing selected), None
// (explicitly no highlighting stylesheet), Reserved (the locally defined
// "dotfiles" palette) and one bundled variant per chroma style. Bundled
// themes can only be obtained from a Catalog, which validates the name.
package theme

import "errors"

// Reserved CLI names.
const (
	NoneName     = "none"
	ReservedName = "dotfiles"
)

// ErrUnknownTheme indicates a name that is neither bundled nor reserved.
var ErrUnknownTheme = errors.New("unknown syntax theme")

type kind uint8

const (
	kindUnset kind = iota
	kindNone
	kindReserved
	kindBundled
)

// Theme identifies a highlighting stylesheet. The zero value is Unset.
type Theme struct {
	kind kind
	name string
}

// Predefined variants.
var (
	Unset    = Theme{}
	None     = Theme{kind: kindNone, name: NoneName}
	Reserved = Theme{kind: kindReserved, name: ReservedName}
)

// IsSet reports whether a theme was selected at all (None counts as a selection).
func (t Theme) IsSet() bool { return t.kind != kindUnset }

// IsNone reports whether highlighting styles were explicitly disabled.
func (t Theme) IsNone() bool { return t.kind == kindNone }

// IsReserved reports whether t is the locally defined theme.
func (t Theme) IsReserved() bool { return t.kind == kindReserved }

// IsBundled reports whether t comes from the bundled catalog.
func (t Theme) IsBundled() bool { return t.kind == kindBundled }

// HasStylesheet reports whether t resolves to stylesheet content.
func (t Theme) HasStylesheet() bool {
	return t.kind == kindReserved || t.kind == kindBundled
}

// String returns the CLI name, or "" for Unset.
func (t Theme) String() string { return t.name }

// Or returns t when set, otherwise fallback.
func (t Theme) Or(fallback Theme) Theme {
	if t.IsSet() {
		return t
	}
	return fallback
}
