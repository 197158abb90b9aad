package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/anchor"
	"go.abhg.dev/goldmark/frontmatter"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Fragment is the rendered body of a document, without head boilerplate.
type Fragment struct {
	HTML string

	// Title is the front matter "title" value, empty when absent.
	Title string
}

// Renderer abstracts Markdown to HTML fragment conversion.
type Renderer interface {
	Render(ctx context.Context, source string) (Fragment, error)
}

// frontMatter holds the front matter keys the renderer understands.
type frontMatter struct {
	Title string `yaml:"title" toml:"title"`
}

// GoldmarkRenderer renders Markdown using goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with raw HTML passthrough,
// bare URL linking, interactive task lists, emoji shorthand, heading anchors
// and syntax highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			TaskList,
			emoji.New(emoji.WithRenderingMethod(emoji.Unicode)),
			newHighlighting(),
			&frontmatter.Extender{},
			&anchor.Extender{
				Texter:     anchor.Text("#"),
				Position:   anchor.Before,
				Attributer: anchor.Attributes{"class": "anchor"},
			},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *GoldmarkRenderer) Render(ctx context.Context, source string) (Fragment, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	source = normalizeSource(source)

	type result struct {
		fragment Fragment
		err      error
	}

	done := make(chan result, 1)

	go func() {
		pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))

		var buf bytes.Buffer
		if err := r.md.Convert([]byte(source), &buf, parser.WithContext(pctx)); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{fragment: Fragment{HTML: buf.String(), Title: titleFrom(pctx)}}
	}()

	select {
	case <-ctx.Done():
		return Fragment{}, ctx.Err()
	case res := <-done:
		return res.fragment, res.err
	}
}

// titleFrom extracts the front matter title. Undecodable front matter is
// ignored: the block is still stripped from the body.
func titleFrom(pctx parser.Context) string {
	data := frontmatter.Get(pctx)
	if data == nil {
		return ""
	}
	var meta frontMatter
	if err := data.Decode(&meta); err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title)
}

// Compile-time interface check.
var _ Renderer = (*GoldmarkRenderer)(nil)
