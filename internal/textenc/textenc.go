// Package textenc converts document bytes between named text encodings and
// the UTF-8 strings the pipeline works with.
package textenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultName is used when no encoding is configured.
const DefaultName = "utf-8"

// ErrUnknownEncoding indicates a label not in the WHATWG encoding index.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Codec pairs an encoding with its canonical name.
type Codec struct {
	Name string
	enc  encoding.Encoding
}

// Lookup resolves an encoding label such as "utf-8", "latin1" or "shift_jis".
// An empty label selects DefaultName.
func Lookup(label string) (Codec, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultName
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return Codec{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(label)
	}
	return Codec{Name: name, enc: enc}, nil
}

// Charset returns the name for a <meta charset> declaration.
func (c Codec) Charset() string {
	return strings.ToUpper(c.Name)
}

// Decode converts raw input to a UTF-8 string. A byte order mark, when
// present, takes precedence over the configured encoding and is stripped.
func (c Codec) Decode(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(c.enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s input: %w", c.Name, err)
	}
	return string(out), nil
}

// Encode converts a UTF-8 string to the codec's encoding. Characters the
// target cannot represent become HTML numeric character references.
func (c Codec) Encode(s string) ([]byte, error) {
	out, _, err := transform.Bytes(encoding.HTMLEscapeUnsupported(c.enc.NewEncoder()), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %s output: %w", c.Name, err)
	}
	return out, nil
}
