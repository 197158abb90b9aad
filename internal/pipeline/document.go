package pipeline

import (
	"html"
	"strings"
)

// DefaultCharset is declared when a Document leaves Charset empty.
const DefaultCharset = "UTF-8"

// ContainerClass is the class of the element wrapping the rendered fragment.
const ContainerClass = "markdown-body"

// Asset is a named stylesheet or script inlined into the document.
type Asset struct {
	Name    string
	Content string
}

// Document is everything AssembleDocument needs.
type Document struct {
	Charset     string
	Title       string
	Stylesheets []Asset
	Scripts     []Asset
	Body        string
}

// AssembleDocument composes a complete HTML5 document.
// Stylesheet and script contents are inlined verbatim; only the title is
// escaped. The result has no leading or trailing whitespace.
func AssembleDocument(doc Document) string {
	charset := doc.Charset
	if charset == "" {
		charset = DefaultCharset
	}

	var sb strings.Builder
	sb.Grow(len(doc.Body) + assetsLen(doc.Stylesheets) + assetsLen(doc.Scripts) + 512)

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(`<meta charset="` + html.EscapeString(charset) + "\">\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	sb.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge">` + "\n")
	if doc.Title != "" {
		sb.WriteString("<title>" + html.EscapeString(doc.Title) + "</title>\n")
	}
	for _, s := range doc.Stylesheets {
		sb.WriteString("<style>\n")
		sb.WriteString(s.Content)
		sb.WriteString("\n</style>\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(`<article class="` + ContainerClass + "\">\n")
	sb.WriteString(doc.Body)
	sb.WriteString("\n</article>\n")
	for _, s := range doc.Scripts {
		sb.WriteString("<script>\n")
		sb.WriteString(s.Content)
		sb.WriteString("\n</script>\n")
	}
	sb.WriteString("</body>\n</html>\n")

	return strings.TrimSpace(sb.String())
}

func assetsLen(assets []Asset) int {
	n := 0
	for _, a := range assets {
		n += len(a.Content) + 20
	}
	return n
}
