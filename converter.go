package md2htmldoc

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2htmldoc/internal/assets"
	"github.com/alnah/go-md2htmldoc/internal/pipeline"
	"github.com/alnah/go-md2htmldoc/internal/theme"
)

// Converter orchestrates the markdown-to-HTML-document pipeline.
// Create with NewConverter and reuse it: a Converter holds no per-document
// state and is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	renderer          Renderer
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	catalog           *theme.Catalog
}

// publicToInternalAdapter wraps public AssetLoader to internal assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

// goldmarkRenderer adapts the pipeline renderer to the public interface.
type goldmarkRenderer struct {
	r *pipeline.GoldmarkRenderer
}

func (g *goldmarkRenderer) Render(ctx context.Context, markdown string) (Fragment, error) {
	f, err := g.r.Render(ctx, markdown)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment(f), nil
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithAssetPath, WithRenderer).
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		catalog: theme.NewCatalog(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.renderer == nil {
		c.renderer = &goldmarkRenderer{r: pipeline.NewGoldmarkRenderer()}
	}

	switch {
	case c.publicAssetLoader != nil:
		if src, ok := c.publicAssetLoader.(styleSource); ok {
			c.assetLoader = &sourcedLoader{publicToInternalAdapter{pub: c.publicAssetLoader}, src}
		} else {
			c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
		}
	default:
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		c.assetLoader = resolver
	}

	return c, nil
}

// sourcedLoader keeps Resolve visible through the public adapter.
type sourcedLoader struct {
	publicToInternalAdapter
	styleSource
}

// Convert renders input.Markdown, collects the assets its options select
// and assembles a complete HTML document.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	fragment, err := c.renderer.Render(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	collected, err := c.CollectAssets(input.Options)
	if err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = fragment.Title
	}

	html := pipeline.AssembleDocument(pipeline.Document{
		Charset:     input.Charset,
		Title:       title,
		Stylesheets: toPipelineAssets(collected.Stylesheets),
		Scripts:     toPipelineAssets(collected.Scripts),
		Body:        fragment.HTML,
	})

	return &Result{HTML: html, Title: title, Assets: collected}, nil
}

// ParseTheme converts a theme name ("monokai", "none", "dotfiles") into a Theme.
// The empty string yields ThemeUnset. Unknown names return ErrUnknownTheme.
func (c *Converter) ParseTheme(name string) (Theme, error) {
	return c.catalog.Parse(name)
}

// Themes lists every accepted theme name.
func (c *Converter) Themes() []string {
	return c.catalog.Names()
}

// Languages lists the languages code blocks can be highlighted in.
func Languages() []string {
	return pipeline.Languages()
}

func toPipelineAssets(in []Asset) []pipeline.Asset {
	out := make([]pipeline.Asset, len(in))
	for i, a := range in {
		out[i] = pipeline.Asset{Name: a.Name, Content: a.Content}
	}
	return out
}
