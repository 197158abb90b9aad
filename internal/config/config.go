// Package config loads md2htmldoc YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2htmldoc/internal/fileutil"
	"github.com/alnah/go-md2htmldoc/internal/textenc"
	"github.com/alnah/go-md2htmldoc/internal/theme"
	"github.com/alnah/go-md2htmldoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxEncodingLength = 40   // longest WHATWG label is well under this
	MaxThemeLength    = 64   // chroma style names
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxTitleLength    = 300  // <title> text
	MaxAssetFiles     = 100  // stylesheets or scripts per list
)

// dirName is the per-user configuration directory under os.UserConfigDir.
const dirName = "md2htmldoc"

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Styles   StylesConfig   `yaml:"styles"`
	Scripts  []string       `yaml:"scripts"`
	Assets   AssetsConfig   `yaml:"assets"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig defines how the source document is read.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // WHATWG label (empty = utf-8)
}

// OutputConfig defines how the generated document is written.
type OutputConfig struct {
	Encoding string `yaml:"encoding"` // WHATWG label (empty = utf-8)
}

// StylesConfig defines stylesheet options.
type StylesConfig struct {
	NoDefaults  bool     `yaml:"noDefaults"`  // skip bundled stylesheets and default theme
	SyntaxTheme string   `yaml:"syntaxTheme"` // chroma style, "none" or "dotfiles"
	Stylesheets []string `yaml:"stylesheets"` // extra files, inlined in order
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // overrides front matter title
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for library users who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.encoding", c.Input.Encoding, MaxEncodingLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.encoding", c.Output.Encoding, MaxEncodingLength); err != nil {
		return err
	}
	if err := validateFieldLength("styles.syntaxTheme", c.Styles.SyntaxTheme, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validatePaths("styles.stylesheets", c.Styles.Stylesheets); err != nil {
		return err
	}
	if err := validatePaths("scripts", c.Scripts); err != nil {
		return err
	}

	if c.Input.Encoding != "" {
		if _, err := textenc.Lookup(c.Input.Encoding); err != nil {
			return fmt.Errorf("%w: input.encoding: %w", ErrInvalidValue, err)
		}
	}
	if c.Output.Encoding != "" {
		if _, err := textenc.Lookup(c.Output.Encoding); err != nil {
			return fmt.Errorf("%w: output.encoding: %w", ErrInvalidValue, err)
		}
	}
	if c.Styles.SyntaxTheme != "" {
		if _, err := theme.NewCatalog().Parse(c.Styles.SyntaxTheme); err != nil {
			return fmt.Errorf("%w: styles.syntaxTheme: %w", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validatePaths checks a list of asset paths.
func validatePaths(fieldName string, paths []string) error {
	if len(paths) > MaxAssetFiles {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, fieldName, len(paths), MaxAssetFiles)
	}
	for i, p := range paths {
		name := fmt.Sprintf("%s[%d]", fieldName, i)
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: %s: empty path", ErrInvalidValue, name)
		}
		if err := validateFieldLength(name, p, MaxPathLength); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfig returns a configuration that changes nothing: every field
// defers to the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// the current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, dirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
