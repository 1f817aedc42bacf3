package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath returns the format whose suffix p carries, ignoring case.
func FromPath(p string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == "" {
		return 0, fmt.Errorf("%w: no suffix on %q", ErrBadFormat, p)
	}
	for _, f := range AllFormats() {
		if slices.Contains(f.Suffixes(), ext) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suffix %q", ErrBadFormat, ext)
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
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case TOMLFormat:
		return []byte("toml"), nil
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

// Suffixes returns the file extensions of this format, dot included, the
// usual one first.
func (f Format) Suffixes() []string {
	switch f {
	case YAMLFormat:
		return []string{".yaml", ".yml"}
	case JSONFormat:
		return []string{".json"}
	case TOMLFormat:
		return []string{".toml"}
	default:
		return nil
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat, TOMLFormat}
}
