package theme

import "github.com/alecthomas/chroma/v2"

// Dotfiles is the reserved theme, generated from the personal base16
// palette rather than taken from the bundled catalog.
var Dotfiles = chroma.MustNewStyle(ReservedName, chroma.StyleEntries{
	chroma.Background:          "#d3d0c8 bg:#2d2d2d",
	chroma.Text:                "#d3d0c8",
	chroma.Error:               "#f2777a",
	chroma.Comment:             "italic #747369",
	chroma.CommentPreproc:      "#cc99cc",
	chroma.Keyword:             "#cc99cc",
	chroma.KeywordConstant:     "#f99157",
	chroma.KeywordType:         "#ffcc66",
	chroma.Name:                "#d3d0c8",
	chroma.NameAttribute:       "#6699cc",
	chroma.NameBuiltin:         "#f2777a",
	chroma.NameClass:           "#ffcc66",
	chroma.NameConstant:        "#f99157",
	chroma.NameDecorator:       "#66cccc",
	chroma.NameFunction:        "#6699cc",
	chroma.NameNamespace:       "#ffcc66",
	chroma.NameTag:             "#f2777a",
	chroma.NameVariable:        "#f2777a",
	chroma.LiteralString:       "#99cc99",
	chroma.LiteralStringEscape: "#d27b53",
	chroma.LiteralNumber:       "#f99157",
	chroma.Operator:            "#66cccc",
	chroma.Punctuation:         "#d3d0c8",
	chroma.GenericDeleted:      "#f2777a",
	chroma.GenericInserted:     "#99cc99",
	chroma.GenericHeading:      "bold #6699cc",
	chroma.GenericSubheading:   "bold #66cccc",
	chroma.GenericEmph:         "italic",
	chroma.GenericStrong:       "bold",
	chroma.LineNumbers:         "#747369",
	chroma.LineHighlight:       "bg:#393939",
})
