package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	md2htmldoc "github.com/alnah/go-md2htmldoc"
	"github.com/alnah/go-md2htmldoc/internal/config"
	"github.com/alnah/go-md2htmldoc/internal/fileutil"
	"github.com/alnah/go-md2htmldoc/internal/hints"
	"github.com/alnah/go-md2htmldoc/internal/textenc"
	"github.com/alnah/go-md2htmldoc/internal/theme"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrWatchRequiresFiles = errors.New("--watch requires INPUT_FILE and OUTPUT_FILE")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// convertConfig is the fully resolved, read-only run configuration.
type convertConfig struct {
	InputPath  string // empty = stdin
	OutputPath string // empty = stdout

	InputCodec  textenc.Codec
	OutputCodec textenc.Codec

	NoDefaultStylesheets bool
	SyntaxTheme          md2htmldoc.Theme
	Stylesheets          []string
	Scripts              []string

	AssetPath string
	Title     string
	Watch     bool
	Verbose   bool
}

// options returns the per-document library options.
func (c *convertConfig) options() md2htmldoc.Options {
	return md2htmldoc.Options{
		NoDefaultStylesheets: c.NoDefaultStylesheets,
		SyntaxTheme:          c.SyntaxTheme,
		Stylesheets:          c.Stylesheets,
		Scripts:              c.Scripts,
		Title:                c.Title,
		Charset:              c.OutputCodec.Charset(),
	}
}

// runConvert resolves the configuration and converts once, or keeps
// converting in watch mode until ctx is cancelled.
func runConvert(ctx context.Context, flags *cliFlags, positional []string, env *Environment) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	conv, err := md2htmldoc.NewConverter(md2htmldoc.WithAssetPath(cfg.Assets.BasePath))
	if err != nil {
		return fmt.Errorf("asset path %q: %w%s", cfg.Assets.BasePath, err, hints.ForAssetPath())
	}

	cc, err := buildConvertConfig(flags, positional, cfg, conv)
	if err != nil {
		return err
	}

	if cc.Watch {
		return runWatch(ctx, cc, env, func(ctx context.Context) error {
			return convertOnce(ctx, conv, cc, env)
		})
	}
	return convertOnce(ctx, conv, cc, env)
}

// resolveConfig loads the config file and applies environment variables
// and CLI flags on top of it, in that order.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	cfg := config.DefaultConfig()
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w%s", err, hintFor(err))
	}
	return cfg, nil
}

// mergeFlags applies CLI flags to the config. Only flags present on the
// command line are applied; list flags replace the configured lists.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.set["input-encoding"] {
		cfg.Input.Encoding = flags.encoding.input
	}
	if flags.set["output-encoding"] {
		cfg.Output.Encoding = flags.encoding.output
	}
	if flags.set["no-default-stylesheets"] {
		cfg.Styles.NoDefaults = flags.styles.noDefaults
	}
	if flags.set["syntax-theme"] {
		cfg.Styles.SyntaxTheme = flags.styles.syntaxTheme
	}
	if flags.set["stylesheet"] {
		cfg.Styles.Stylesheets = flags.styles.stylesheets
	}
	if flags.set["script"] {
		cfg.Scripts = flags.styles.scripts
	}
	if flags.set["asset-path"] {
		cfg.Assets.BasePath = flags.styles.assetPath
	}
	if flags.set["title"] {
		cfg.Document.Title = flags.title
	}
}

// hintFor returns the actionable hint for a validation error, if any.
func hintFor(err error) string {
	switch {
	case errors.Is(err, theme.ErrUnknownTheme):
		return hints.ForUnknownTheme(theme.NewCatalog().Names())
	case errors.Is(err, textenc.ErrUnknownEncoding):
		return hints.ForUnknownEncoding()
	default:
		return ""
	}
}

// buildConvertConfig turns the merged config into the run configuration.
func buildConvertConfig(flags *cliFlags, positional []string, cfg *config.Config, conv *md2htmldoc.Converter) (*convertConfig, error) {
	cc := &convertConfig{
		NoDefaultStylesheets: cfg.Styles.NoDefaults,
		Stylesheets:          cfg.Styles.Stylesheets,
		Scripts:              cfg.Scripts,
		AssetPath:            cfg.Assets.BasePath,
		Title:                cfg.Document.Title,
		Watch:                flags.watch,
		Verbose:              flags.common.verbose,
	}

	if len(positional) > 0 && !fileutil.IsStdio(positional[0]) {
		cc.InputPath = positional[0]
	}
	if len(positional) > 1 && !fileutil.IsStdio(positional[1]) {
		cc.OutputPath = positional[1]
	}

	var err error
	if cc.InputCodec, err = textenc.Lookup(cfg.Input.Encoding); err != nil {
		return nil, fmt.Errorf("input encoding: %w%s", err, hints.ForUnknownEncoding())
	}
	if cc.OutputCodec, err = textenc.Lookup(cfg.Output.Encoding); err != nil {
		return nil, fmt.Errorf("output encoding: %w%s", err, hints.ForUnknownEncoding())
	}
	if cc.SyntaxTheme, err = conv.ParseTheme(cfg.Styles.SyntaxTheme); err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForUnknownTheme(conv.Themes()))
	}

	if cc.Watch && (cc.InputPath == "" || cc.OutputPath == "") {
		return nil, fmt.Errorf("%w%s", ErrWatchRequiresFiles, hints.ForWatch())
	}

	return cc, nil
}

// convertOnce reads the whole input, converts it and writes the whole
// document. Nothing is written unless every step before the write succeeds.
func convertOnce(ctx context.Context, conv *md2htmldoc.Converter, cc *convertConfig, env *Environment) error {
	start := env.Now()

	data, err := readInput(cc.InputPath, env.Stdin)
	if err != nil {
		return err
	}
	markdown, err := cc.InputCodec.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	result, err := conv.Convert(ctx, md2htmldoc.Input{Markdown: markdown, Options: cc.options()})
	if err != nil {
		return err
	}

	out, err := cc.OutputCodec.Encode(result.HTML)
	if err != nil {
		return err
	}
	if err := writeOutput(cc.OutputPath, out, env.Stdout); err != nil {
		return err
	}

	if cc.Verbose {
		printReport(env.Stderr, cc, result, env.Now().Sub(start).Milliseconds())
	}
	return nil
}

// readInput reads a file, or standard input when path is empty.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// writeOutput replaces a file atomically, or writes to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// printReport writes verbose diagnostics for one conversion.
func printReport(w io.Writer, cc *convertConfig, result *md2htmldoc.Result, ms int64) {
	in, out := cc.InputPath, cc.OutputPath
	if in == "" {
		in = "<stdin>"
	}
	if out == "" {
		out = "<stdout>"
	}

	fmt.Fprintf(w, "Input: %s (%s)\n", in, cc.InputCodec.Name)
	if result.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", result.Title)
	}
	for _, a := range result.Assets.Stylesheets {
		fmt.Fprintf(w, "Stylesheet: %s (%s)\n", a.Name, a.Source)
	}
	for _, a := range result.Assets.Scripts {
		fmt.Fprintf(w, "Script: %s\n", a.Name)
	}
	fmt.Fprintf(w, "Output: %s (%s, %d bytes) in %dms\n", out, cc.OutputCodec.Name, len(result.HTML), ms)
}
