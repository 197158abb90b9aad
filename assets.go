package md2htmldoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2htmldoc/internal/assets"
)

// Names of the bundled stylesheets, in the order they are applied.
const (
	BaseStyle      = assets.BaseStyleName
	AdditionsStyle = assets.AdditionsStyleName
)

// AssetLoader defines the contract for loading bundled stylesheets by name.
// Implementations may load from filesystem, embedded assets, a database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, {basePath}/styles/{name}.css takes precedence with
// fallback to embedded.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps internal AssetResolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) Resolve(name string) (string, assets.Origin, error) {
	return a.resolver.Resolve(name)
}

// styleSource is implemented by loaders that can tell where a style came from.
type styleSource interface {
	Resolve(name string) (string, assets.Origin, error)
}

// loadStyle loads a bundled style and reports its source. Loaders that
// cannot tell where a style came from are reported as custom.
func (c *Converter) loadStyle(name string) (Asset, error) {
	if src, ok := c.assetLoader.(styleSource); ok {
		content, origin, err := src.Resolve(name)
		if err != nil {
			return Asset{}, convertAssetError(err)
		}
		return Asset{Name: name, Source: string(origin), Content: content}, nil
	}

	content, err := c.assetLoader.LoadStyle(name)
	if err != nil {
		return Asset{}, convertAssetError(err)
	}
	return Asset{Name: name, Source: SourceCustom, Content: content}, nil
}

// CollectAssets gathers the stylesheets and scripts for opts, in order:
// bundled stylesheets (unless suppressed), the syntax theme, then extra
// stylesheets; scripts follow their own list. Any unreadable file aborts
// the collection.
func (c *Converter) CollectAssets(opts Options) (Assets, error) {
	var out Assets

	pending := ThemeUnset
	if !opts.NoDefaultStylesheets {
		for _, name := range assets.DefaultStyleNames() {
			a, err := c.loadStyle(name)
			if err != nil {
				return Assets{}, fmt.Errorf("%w: %s: %w", ErrReadAsset, name, err)
			}
			out.Stylesheets = append(out.Stylesheets, a)
		}
		pending = ThemeReserved
	}

	selected := opts.SyntaxTheme.Or(pending)
	if selected.HasStylesheet() {
		css, err := c.catalog.CSS(selected)
		if err != nil {
			return Assets{}, err
		}
		out.Stylesheets = append(out.Stylesheets, Asset{
			Name:    selected.String(),
			Source:  SourceGenerated,
			Content: css,
		})
	}

	for _, path := range opts.Stylesheets {
		a, err := readAssetFile(path)
		if err != nil {
			return Assets{}, err
		}
		out.Stylesheets = append(out.Stylesheets, a)
	}
	for _, path := range opts.Scripts {
		a, err := readAssetFile(path)
		if err != nil {
			return Assets{}, err
		}
		out.Scripts = append(out.Scripts, a)
	}

	return out, nil
}

// readAssetFile reads a user-supplied stylesheet or script verbatim.
func readAssetFile(path string) (Asset, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %w", ErrReadAsset, err)
	}
	return Asset{Name: path, Source: SourceFile, Content: string(content)}, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // Invalid name means not found
	case errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrReadAsset, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
