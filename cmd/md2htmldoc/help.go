package main

import (
	"fmt"
	"io"
	"strings"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2htmldoc [INPUT_FILE] [OUTPUT_FILE] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to a single self-contained HTML document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  INPUT_FILE     Markdown source (default or \"-\": standard input)")
	fmt.Fprintln(w, "  OUTPUT_FILE    HTML destination (default or \"-\": standard output)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Encoding:")
	fmt.Fprintln(w, "      --input-encoding <enc>    Input text encoding (default utf-8)")
	fmt.Fprintln(w, "      --output-encoding <enc>   Output text encoding (default utf-8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --no-default-stylesheets  Omit bundled stylesheets and default theme")
	fmt.Fprintln(w, "      --syntax-theme <name>     Highlighting theme, \"none\" or \"dotfiles\"")
	fmt.Fprintln(w, "      --stylesheet <path>...    Extra stylesheets, up to the next flag")
	fmt.Fprintln(w, "      --script <path>...        Extra scripts, up to the next flag")
	fmt.Fprintln(w, "      --asset-path <dir>        Override bundled styles from <dir>/styles/")
	fmt.Fprintln(w, "      --title <text>            Document title (default: front matter title)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "  -w, --watch                   Convert again when input files change")
	fmt.Fprintln(w, "      --list-themes             Print syntax theme names")
	fmt.Fprintln(w, "      --list-languages          Print highlighted language names")
	fmt.Fprintln(w, "  -v, --verbose                 Print diagnostics to stderr")
	fmt.Fprintln(w, "  -h, --help                    Show this help")
	fmt.Fprintln(w, "      --version                 Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTMLDOC_CONFIG, MD2HTMLDOC_SYNTAX_THEME, MD2HTMLDOC_INPUT_ENCODING,")
	fmt.Fprintln(w, "  MD2HTMLDOC_OUTPUT_ENCODING, MD2HTMLDOC_ASSET_PATH")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage error, 3 I/O error")
}

// printList prints one name per line.
func printList(w io.Writer, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(names, "\n"))
}
