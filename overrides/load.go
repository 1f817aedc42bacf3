package overrides

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/signadot/confmerge/format"
)

// Load reads an annotation file in format f.
func Load(r io.Reader, f format.Format) (map[string]string, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw := map[string]any{}
	if len(bytes.TrimSpace(d)) != 0 {
		if err := unmarshal(d, f, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotMap, err)
		}
	}
	return stringValues(raw)
}

func unmarshal(d []byte, f format.Format, v *map[string]any) error {
	switch f {
	case format.YAMLFormat:
		return yaml.Unmarshal(d, v)
	case format.JSONFormat:
		return json.Unmarshal(d, v)
	case format.TOMLFormat:
		return toml.Unmarshal(d, v)
	default:
		return fmt.Errorf("%w %q", format.ErrBadFormat, f)
	}
}

func stringValues(raw map[string]any) (map[string]string, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make(map[string]string, len(raw))
	for _, k := range keys {
		s, ok := raw[k].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s has %T", ErrNotString, k, raw[k])
		}
		res[k] = s
	}
	return res, nil
}
