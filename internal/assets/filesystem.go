package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// stylesDir is the subdirectory of an asset path holding <name>.css files.
const stylesDir = "styles"

// FilesystemLoader serves styles from <basePath>/styles. Reads go through
// an os.Root so a style file can never resolve outside that directory.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader checks that basePath is an existing, listable
// directory. A missing styles subdirectory is fine: every lookup then
// reports ErrStyleNotFound and the resolver falls back to embedded styles.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, abs)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBasePath, err)
	}
	defer root.Close()

	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrInvalidBasePath, abs, err)
	}
	return &FilesystemLoader{dir: filepath.Join(abs, stylesDir)}, nil
}

// LoadStyle reads styles/<name>.css below the asset path.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(f.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAssetRead, f.dir, err)
	}
	defer root.Close()

	file := name + ".css"
	content, err := root.ReadFile(file)
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case isSymlink(root, file):
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, filepath.Join(f.dir, file))
	default:
		return "", fmt.Errorf("%w: %s: %w", ErrAssetRead, filepath.Join(f.dir, file), err)
	}
}

func isSymlink(root *os.Root, name string) bool {
	info, err := root.Lstat(name)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

var _ AssetLoader = (*FilesystemLoader)(nil)
