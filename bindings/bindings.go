/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package bindings loads caller-supplied binding values for the CLI from
// JSON, JSONC, or YAML files and from key=value pairs.
package bindings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"pformat.dev/pformat/fs"
)

// Load reads one bindings file. JSON files may carry comments and trailing
// commas (JSONC); anything that does not look like JSON is parsed as YAML.
func Load(filesystem fs.FileSystem, path string) (map[string]any, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if isLikelyJSON(data) {
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	normalized, ok := normalize(yamlRaw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: bindings root must be a mapping", path)
	}
	return normalized, nil
}

// LoadAll reads every file in order and merges the results; later files
// override earlier ones key by key.
func LoadAll(filesystem fs.FileSystem, paths []string) (map[string]any, error) {
	merged := make(map[string]any)
	for _, path := range paths {
		b, err := Load(filesystem, path)
		if err != nil {
			return nil, err
		}
		Merge(merged, b)
	}
	return merged, nil
}

// Merge copies src into dst, overriding existing keys.
func Merge(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

// ParsePair splits a "key=value" pair. The value is YAML-decoded so plain
// scalars keep their natural type ("3" becomes an int, "true" a bool);
// values that fail to decode stay strings.
func ParsePair(pair string) (string, any, error) {
	key, value, found := strings.Cut(pair, "=")
	if !found || key == "" {
		return "", nil, fmt.Errorf("invalid binding %q: expected key=value", pair)
	}

	var typed any
	if err := yaml.Unmarshal([]byte(value), &typed); err != nil {
		return key, value, nil
	}
	return key, normalize(typed), nil
}

// isLikelyJSON sniffs for a leading "{" after whitespace.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalize rewrites YAML map types so nested lookups see map[string]any
// throughout (yaml.v3 produces map[string]any for string keys, but mixed
// keys come back as map[any]any).
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
