// Package wire provides total accessors over decoded JSON trees.
//
// Server replies are decoded into generic values (map[string]any, []any,
// string, float64, bool, nil) and then converted into typed entities field by
// field. Every accessor returns the zero value when the key is missing or the
// value has an unexpected type, so a partial or malformed reply never fails
// the whole decode.
package wire

import (
	"encoding/json"
	"strconv"
)

// Map returns v as an object, or nil.
func Map(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Slice returns v as an array, or nil.
func Slice(v any) []any {
	s, _ := v.([]any)
	return s
}

// String returns m[key] when it is a string.
func String(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Float returns m[key] as a float64. Numeric strings are accepted.
func Float(m map[string]any, key string) float64 {
	return toFloat(m[key])
}

// Int returns m[key] truncated to an int.
func Int(m map[string]any, key string) int {
	return int(toFloat(m[key]))
}

// Bool returns m[key] when it is a bool.
func Bool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Strings returns the string elements of m[key], skipping anything else.
func Strings(m map[string]any, key string) []string {
	items := Slice(m[key])
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Floats converts an array of numbers, mapping non-numbers to zero.
func Floats(v any) []float64 {
	items := Slice(v)
	if items == nil {
		return nil
	}
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = toFloat(item)
	}
	return out
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
