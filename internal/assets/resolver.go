package assets

import "errors"

// Origin names the layer that served a style.
type Origin string

const (
	OriginEmbedded Origin = "embedded"
	OriginCustom   Origin = "custom"
)

type layer struct {
	origin Origin
	loader AssetLoader
}

// AssetResolver looks a style up in each layer in turn: the --asset-path
// directory when one is configured, then the embedded styles. Only
// ErrStyleNotFound moves on to the next layer.
type AssetResolver struct {
	layers []layer
}

// NewAssetResolver builds a resolver. An empty basePath means embedded
// styles only; otherwise basePath must be a readable directory.
func NewAssetResolver(basePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if basePath != "" {
		fsLoader, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, layer{OriginCustom, fsLoader})
	}
	r.layers = append(r.layers, layer{OriginEmbedded, NewEmbeddedLoader()})
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	content, _, err := r.Resolve(name)
	return content, err
}

// Resolve returns the style content together with the layer it came from.
func (r *AssetResolver) Resolve(name string) (string, Origin, error) {
	var err error
	for _, l := range r.layers {
		var content string
		content, err = l.loader.LoadStyle(name)
		if err == nil {
			return content, l.origin, nil
		}
		if !errors.Is(err, ErrStyleNotFound) {
			return "", "", err
		}
	}
	return "", "", err
}

var _ AssetLoader = (*AssetResolver)(nil)
