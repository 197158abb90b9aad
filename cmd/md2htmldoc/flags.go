package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// maxPositionalArgs is INPUT_FILE and OUTPUT_FILE.
const maxPositionalArgs = 2

// multiValueFlags take every following non-flag token as a value, so
// "--stylesheet a.css b.css" adds both files.
var multiValueFlags = map[string]bool{"--stylesheet": true, "--script": true}

// expandMultiValue rewrites "--stylesheet a b" into "--stylesheet a
// --stylesheet b" so pflag sees one value per occurrence. A list flag given
// no value is dropped from args and reported in empty; it still counts as
// set and clears the configured list. Tokens after "--" are left alone.
func expandMultiValue(args []string) (out []string, empty []string) {
	out = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...), empty
		}
		if !multiValueFlags[arg] {
			out = append(out, arg)
			continue
		}
		n := 0
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			n++
			out = append(out, arg, args[i])
		}
		if n == 0 {
			empty = append(empty, strings.TrimPrefix(arg, "--"))
		}
	}
	return out, empty
}

// commonFlags holds flags that do not affect the generated document.
type commonFlags struct {
	config  string
	verbose bool
	help    bool
	version bool
}

// styleFlags holds stylesheet and script flags.
type styleFlags struct {
	noDefaults  bool
	syntaxTheme string
	stylesheets []string
	scripts     []string
	assetPath   string
}

// encodingFlags holds text encoding flags.
type encodingFlags struct {
	input  string
	output string
}

// listFlags holds the catalog listing flags.
type listFlags struct {
	themes    bool
	languages bool
}

// cliFlags holds all command-line flags.
type cliFlags struct {
	common   commonFlags
	styles   styleFlags
	encoding encodingFlags
	list     listFlags
	title    string
	watch    bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print diagnostics to stderr")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")
}

// addStyleFlags adds stylesheet and script flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.BoolVar(&f.noDefaults, "no-default-stylesheets", false, "omit bundled stylesheets and the default syntax theme")
	fs.StringVar(&f.syntaxTheme, "syntax-theme", "", "syntax highlighting theme, \"none\" or \"dotfiles\"")
	fs.StringArrayVar(&f.stylesheets, "stylesheet", nil, "extra stylesheet files")
	fs.StringArrayVar(&f.scripts, "script", nil, "extra script files")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding bundled stylesheets")
}

// addEncodingFlags adds text encoding flags to a FlagSet.
func addEncodingFlags(fs *flag.FlagSet, f *encodingFlags) {
	fs.StringVar(&f.input, "input-encoding", "", "input text encoding (default utf-8)")
	fs.StringVar(&f.output, "output-encoding", "", "output text encoding (default utf-8)")
}

// addListFlags adds catalog listing flags to a FlagSet.
func addListFlags(fs *flag.FlagSet, f *listFlags) {
	fs.BoolVar(&f.themes, "list-themes", false, "print syntax theme names and exit")
	fs.BoolVar(&f.languages, "list-languages", false, "print highlighted language names and exit")
}

// parseFlags parses arguments (without the program name) and returns the
// flags and positional arguments. Every failure wraps ErrUsage.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("md2htmldoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.styles)
	addEncodingFlags(fs, &f.encoding)
	addListFlags(fs, &f.list)
	fs.StringVar(&f.title, "title", "", "document <title>, overrides front matter")
	fs.BoolVarP(&f.watch, "watch", "w", false, "convert again whenever an input file changes")

	args, empty := expandMultiValue(args)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	for _, name := range empty {
		f.set[name] = true
	}

	positional := fs.Args()
	if len(positional) > maxPositionalArgs {
		return nil, nil, fmt.Errorf("%w: got %d, want at most %d", ErrTooManyArgs, len(positional), maxPositionalArgs)
	}

	return f, positional, nil
}
