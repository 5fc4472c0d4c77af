// Package config holds the flat key/value model shared by the config
// store adapters.
package config

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Values is configuration flattened to dot-notation keys.
type Values map[string]any

// String coerces the value at key to a string.
func (v Values) String(key string) string {
	val, ok := v[key]
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(val)
	if err != nil {
		return ""
	}
	return s
}

// Bool coerces the value at key to a boolean.
func (v Values) Bool(key string) bool {
	val, ok := v[key]
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(val)
	if err != nil {
		return false
	}
	return b
}

// Keys returns the keys in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Flatten converts nested tables to dot-notation keys.
// {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any) Values {
	out := make(Values)
	flattenInto(out, m, "")
	return out
}

func flattenInto(out Values, m map[string]any, prefix string) {
	for key, value := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(out, nested, full)
			continue
		}
		out[full] = value
	}
}

// Nested is the inverse of Flatten.
// {"a.b": 1} becomes {"a": {"b": 1}}.
func (v Values) Nested() map[string]any {
	root := make(map[string]any)

	for key, value := range v {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	return root
}
