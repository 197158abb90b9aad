package theme

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Catalog holds the themes known to one process. Build it once with
// NewCatalog and pass it to whatever needs to parse or render themes.
type Catalog struct {
	bundled   map[string]*chroma.Style
	reserved  *chroma.Style
	formatter *chromahtml.Formatter
}

// NewCatalog snapshots the chroma style registry and adds the reserved theme.
func NewCatalog() *Catalog {
	bundled := make(map[string]*chroma.Style, len(styles.Registry))
	for name, style := range styles.Registry {
		if name == NoneName || name == ReservedName {
			continue
		}
		bundled[name] = style
	}

	return &Catalog{
		bundled:   bundled,
		reserved:  Dotfiles,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Parse converts a CLI name into a Theme.
// The empty string yields Unset; unknown names return ErrUnknownTheme.
func (c *Catalog) Parse(name string) (Theme, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "":
		return Unset, nil
	case NoneName:
		return None, nil
	case ReservedName:
		return Reserved, nil
	}
	if _, ok := c.bundled[name]; ok {
		return Theme{kind: kindBundled, name: name}, nil
	}
	return Unset, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Names lists every accepted CLI name, bundled themes sorted, followed by
// "none" and the reserved name.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.bundled)+2)
	for name := range c.bundled {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, NoneName, ReservedName)
}

// CSS renders the stylesheet for t. Unset and None have no stylesheet and
// return an empty string.
func (c *Catalog) CSS(t Theme) (string, error) {
	var style *chroma.Style
	switch t.kind {
	case kindUnset, kindNone:
		return "", nil
	case kindReserved:
		style = c.reserved
	case kindBundled:
		s, ok := c.bundled[t.name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownTheme, t.name)
		}
		style = s
	}

	var buf bytes.Buffer
	if err := c.formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("generating %s theme stylesheet: %w", t.name, err)
	}
	return buf.String(), nil
}
