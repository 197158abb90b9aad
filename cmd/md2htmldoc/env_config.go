package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2htmldoc/internal/config"
)

// envPrefix marks the environment variables this tool reads.
const envPrefix = "MD2HTMLDOC_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MD2HTMLDOC_CONFIG: config file name or path
	SyntaxTheme    string // MD2HTMLDOC_SYNTAX_THEME: theme name
	InputEncoding  string // MD2HTMLDOC_INPUT_ENCODING
	OutputEncoding string // MD2HTMLDOC_OUTPUT_ENCODING
	AssetPath      string // MD2HTMLDOC_ASSET_PATH: stylesheet override directory
}

// knownEnvVars lists valid MD2HTMLDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTMLDOC_CONFIG":          true,
	"MD2HTMLDOC_SYNTAX_THEME":    true,
	"MD2HTMLDOC_INPUT_ENCODING":  true,
	"MD2HTMLDOC_OUTPUT_ENCODING": true,
	"MD2HTMLDOC_ASSET_PATH":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:     strings.TrimSpace(getenv("MD2HTMLDOC_CONFIG")),
		SyntaxTheme:    strings.TrimSpace(getenv("MD2HTMLDOC_SYNTAX_THEME")),
		InputEncoding:  strings.TrimSpace(getenv("MD2HTMLDOC_INPUT_ENCODING")),
		OutputEncoding: strings.TrimSpace(getenv("MD2HTMLDOC_OUTPUT_ENCODING")),
		AssetPath:      strings.TrimSpace(getenv("MD2HTMLDOC_ASSET_PATH")),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTMLDOC_* variables.
// Helps catch typos like MD2HTMLDOC_THEME instead of MD2HTMLDOC_SYNTAX_THEME.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace config file values; CLI flags are merged afterwards
// by mergeFlags, giving CLI > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SyntaxTheme != "" {
		cfg.Styles.SyntaxTheme = env.SyntaxTheme
	}
	if env.InputEncoding != "" {
		cfg.Input.Encoding = env.InputEncoding
	}
	if env.OutputEncoding != "" {
		cfg.Output.Encoding = env.OutputEncoding
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
