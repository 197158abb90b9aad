// Package yamlutil decodes the strict YAML accepted in configuration files.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a document at 256 KiB.
const MaxInputSize = 256 << 10

var (
	ErrNilData        = errors.New("yaml: empty document")
	ErrNilDestination = errors.New("yaml: nil destination")
	ErrInputTooLarge  = errors.New("yaml: document too large")
	ErrSyntax         = errors.New("yaml: invalid document")
)

// UnmarshalStrict decodes a single document into v. Keys without a matching
// field and repeated keys are errors; the message quotes the offending
// source line.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case v == nil:
		return ErrNilDestination
	case len(bytes.TrimSpace(data)) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrInputTooLarge, len(data), MaxInputSize)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w:\n%s", ErrSyntax, yaml.FormatError(err, false, true))
	}
	return nil
}
