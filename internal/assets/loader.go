package assets

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid asset path")
	ErrAssetRead        = errors.New("reading asset")

	// ErrPathTraversal is returned when a style file under the asset path
	// resolves outside of it, typically through a symlink.
	ErrPathTraversal = errors.New("style escapes asset path")
)

// AssetLoader loads a bundled stylesheet by bare name, without the .css
// extension. Unknown names yield ErrStyleNotFound and malformed ones
// ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}

// ValidateAssetName accepts names made of letters, digits, '-' and '_'.
// Anything else could select a different file than styles/<name>.css.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("%w: %q contains %q", ErrInvalidAssetName, name, r)
	}
	return nil
}
