package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawRecord is one untyped row from a provider response. Providers disagree
// on field names for the same concept, so consumers read values through the
// ordered lookup helpers instead of indexing keys directly.
type RawRecord map[string]interface{}

// FirstString returns the first non-empty string value among keys, checked
// in order. Numeric values are formatted as strings so identifier-style
// fields survive providers that send them as numbers. Returns "" when no
// key yields a value.
func (r RawRecord) FirstString(keys ...string) string {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}

// FirstFloat returns the first numeric value among keys, checked in order.
// Strings holding numbers are parsed so scraped tables can feed the same
// path as JSON APIs. Returns nil when no key yields a number.
func (r RawRecord) FirstFloat(keys ...string) *float64 {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case float64:
			return Float(v)
		case float32:
			return Float(float64(v))
		case int:
			return Float(float64(v))
		case int64:
			return Float(float64(v))
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return Float(f)
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return Float(f)
			}
		}
	}
	return nil
}
