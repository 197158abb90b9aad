package pipeline

import (
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// newHighlighting highlights fenced code blocks whose language chroma knows.
// Unknown or missing languages render as plain escaped <pre><code>.
// Colors come from a separate theme stylesheet, so only CSS classes are emitted.
func newHighlighting() goldmark.Extender {
	return highlighting.NewHighlighting(
		highlighting.WithGuessLanguage(false),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true),
		),
	)
}

// Languages returns the sorted language names the highlighter recognizes.
func Languages() []string {
	return lexers.Names(false)
}

