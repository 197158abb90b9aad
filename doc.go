// Package md2htmldoc converts Markdown documents to single, self-contained
// HTML files styled like GitHub's rendered Markdown.
//
// # Quick Start
//
//	conv, err := md2htmldoc.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2htmldoc.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0o644)
//
// Every stylesheet and script is inlined, so the output has no external
// references of its own and can be opened or mailed as one file.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (BOM removal, line ending normalization)
//  2. Markdown to HTML via goldmark: GFM tables, strikethrough, autolinks,
//     task lists, emoji shortcodes, raw HTML and front matter
//  3. Heading anchors with GitHub-compatible, per-document unique IDs
//  4. Syntax highlighting via chroma, emitted as CSS classes
//  5. Asset collection: bundled stylesheets, syntax theme, user files
//  6. Document assembly inside <article class="markdown-body">
//
// # Styling
//
// Per-conversion options are passed via Input:
//
//	theme, err := conv.ParseTheme("monokai")
//	result, err := conv.Convert(ctx, md2htmldoc.Input{
//	    Markdown: content,
//	    Options: md2htmldoc.Options{
//	        SyntaxTheme: theme,
//	        Stylesheets: []string{"print.css"},
//	        Scripts:     []string{"mermaid.js"},
//	    },
//	})
//
// ThemeNone drops the syntax stylesheet. NoDefaultStylesheets drops the
// bundled stylesheets and the default theme but keeps an explicit one.
//
// # Custom Assets
//
// Override bundled stylesheets from a directory:
//
//	conv, err := md2htmldoc.NewConverter(md2htmldoc.WithAssetPath("/path/to/assets"))
//
// Files are looked up as {path}/styles/{name}.css; missing names fall back
// to the embedded copy.
package md2htmldoc
