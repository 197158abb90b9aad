package md2htmldoc

import (
	"context"
)

// Options selects the assets wrapped around a rendered document.
type Options struct {
	// NoDefaultStylesheets skips the bundled stylesheets and the default
	// syntax theme. An explicit SyntaxTheme is still applied.
	NoDefaultStylesheets bool

	// SyntaxTheme overrides the default highlighting theme. ThemeUnset keeps
	// the default; ThemeNone removes it.
	SyntaxTheme Theme

	Stylesheets []string // extra CSS files, inlined verbatim in order
	Scripts     []string // extra JavaScript files, inlined verbatim in order

	Title   string // overrides the front matter title
	Charset string // <meta charset> value, default "UTF-8"
}

// Input contains conversion parameters.
type Input struct {
	Markdown string
	Options
}

// Asset is one inlined stylesheet or script.
type Asset struct {
	Name    string // bundled style name, theme name or file path
	Source  string // "embedded", "custom", "generated" or "file"
	Content string
}

// Asset sources.
const (
	SourceEmbedded  = "embedded"
	SourceCustom    = "custom"
	SourceGenerated = "generated"
	SourceFile      = "file"
)

// Assets holds the collected stylesheets and scripts in document order.
type Assets struct {
	Stylesheets []Asset
	Scripts     []Asset
}

// Result is a converted document.
type Result struct {
	HTML   string // complete HTML document
	Title  string // <title> text, empty when none was known
	Assets Assets
}

// Fragment is rendered Markdown without document boilerplate.
type Fragment struct {
	HTML  string
	Title string // front matter title, if any
}

// Renderer converts Markdown to an HTML fragment. The default is goldmark
// with raw HTML, linkify, task lists, emoji, heading anchors and chroma
// highlighting; tests and embedders may substitute their own.
type Renderer interface {
	Render(ctx context.Context, markdown string) (Fragment, error)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	assetPath string
}

// WithRenderer replaces the Markdown renderer.
func WithRenderer(r Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// WithAssetPath overrides bundled stylesheets from {path}/styles/{name}.css,
// falling back to the embedded copy for names the directory lacks.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom loader for bundled stylesheet names.
// Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}
