package format

import (
	"errors"
	"fmt"
)

// Format selects one of the serialized renditions of a shard tree.
type Format int

const (
	Binary Format = iota
	JSON
	YAML
)

var ErrBadFormat = errors.New("bad format")

// ParseFormat accepts a format name or its single-letter shorthand.
func ParseFormat(v string) (Format, error) {
	switch v {
	case "b", "bin", "binary":
		return Binary, nil
	case "j", "json":
		return JSON, nil
	case "y", "yaml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Binary:
		return []byte("binary"), nil
	case JSON:
		return []byte("json"), nil
	case YAML:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case Binary:
		return ".shard"
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{Binary, JSON, YAML}
}
