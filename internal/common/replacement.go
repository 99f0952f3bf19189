// -----------------------------------------------------------------------
// Last Modified: Thursday, 14th November 2025 1:00:00 pm
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

// Package common provides utility functions for environment reference replacement.
//
// The {env:NAME} syntax allows configuration values to reference environment
// variables without hardcoding secrets in config files. After the TOML files
// are parsed, these references are replaced with values from the process
// environment.
//
// Example:
//   Input:  "api_key = {env:INDAGO_EODHD_API_KEY}"
//   Env:    INDAGO_EODHD_API_KEY=sk-12345
//   Output: "api_key = sk-12345"
//
// Replacement is case-sensitive. Missing variables are logged as warnings but
// not treated as errors, allowing graceful degradation.
package common

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"
)

// envRefPattern matches {env:NAME} references in strings. Variable names
// follow POSIX conventions: letters, digits, and underscores.
var envRefPattern = regexp.MustCompile(`\{env:([A-Za-z_][A-Za-z0-9_]*)\}`)

// EnvMap snapshots the process environment into a map suitable for
// ReplaceEnvReferences. Malformed entries without '=' are skipped.
func EnvMap() map[string]string {
	environ := os.Environ()
	m := make(map[string]string, len(environ))
	for _, entry := range environ {
		if idx := strings.Index(entry, "="); idx > 0 {
			m[entry[:idx]] = entry[idx+1:]
		}
	}
	return m
}

// ReplaceEnvReferences replaces all {env:NAME} references in the input string
// with values from the provided environment map. If a variable is not set, the
// reference is left unchanged and a warning is logged.
//
// Example:
//   ReplaceEnvReferences("api_key = {env:API_KEY}", map[string]string{"API_KEY": "sk-123"})
//   Returns: "api_key = sk-123"
func ReplaceEnvReferences(input string, envMap map[string]string, logger arbor.ILogger) string {
	if input == "" {
		return input
	}

	// Log warnings for unresolved references before replacement
	logUnresolvedRefs(input, envMap, logger)

	// Replace all {env:NAME} references
	result := envRefPattern.ReplaceAllStringFunc(input, func(match string) string {
		// Extract variable name (strip "{env:" prefix and "}" suffix)
		name := match[5 : len(match)-1]

		// Look up in environment map
		if value, exists := envMap[name]; exists {
			return value
		}

		// Variable not set - return unchanged
		return match
	})

	return result
}

// logUnresolvedRefs finds all {env:NAME} references and logs warnings for unset variables
func logUnresolvedRefs(input string, envMap map[string]string, logger arbor.ILogger) {
	matches := envRefPattern.FindAllStringSubmatch(input, -1)
	for _, match := range matches {
		if len(match) > 1 {
			name := match[1]
			if _, exists := envMap[name]; !exists {
				logger.Warn().
					Str("reference", match[0]).
					Str("variable", name).
					Msg("Unresolved environment reference - variable not set")
			}
		}
	}
}

// ReplaceInMap recursively replaces {env:NAME} references in a map structure.
// It handles string values, nested maps, and arrays of strings or maps.
// The map is mutated in-place.
func ReplaceInMap(m map[string]interface{}, envMap map[string]string, logger arbor.ILogger) error {
	for key, value := range m {
		switch v := value.(type) {
		case string:
			// Replace string value
			oldValue := v
			newValue := ReplaceEnvReferences(v, envMap, logger)
			if oldValue != newValue {
				m[key] = newValue
				logger.Debug().
					Str("key", key).
					Msg("Replaced environment reference in map")
			}

		case map[string]interface{}:
			// Recursive call for nested map
			if err := ReplaceInMap(v, envMap, logger); err != nil {
				return fmt.Errorf("failed to replace in nested map at key '%s': %w", key, err)
			}

		case []interface{}:
			// Handle array elements
			for i, elem := range v {
				switch e := elem.(type) {
				case string:
					oldValue := e
					newValue := ReplaceEnvReferences(e, envMap, logger)
					if oldValue != newValue {
						v[i] = newValue
						logger.Debug().
							Str("key", key).
							Int("index", i).
							Msg("Replaced environment reference in array")
					}

				case map[string]interface{}:
					// Recursive call for map in array
					if err := ReplaceInMap(e, envMap, logger); err != nil {
						return fmt.Errorf("failed to replace in array element at key '%s'[%d]: %w", key, i, err)
					}
				}
			}

			// Other types (int, bool, float, etc.) - skip, no replacement needed
		}
	}

	return nil
}

// ReplaceInStruct uses reflection to recursively replace {env:NAME} references
// in a struct's string fields. It handles nested structs, maps, slices, and
// pointer fields. The struct must be passed as a pointer for in-place mutation.
func ReplaceInStruct(v interface{}, envMap map[string]string, logger arbor.ILogger) error {
	// Get the reflect value
	val := reflect.ValueOf(v)

	// Must be a pointer
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("ReplaceInStruct requires a pointer, got %T", v)
	}

	// Get the element the pointer points to
	val = val.Elem()

	// Must be a struct
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("ReplaceInStruct requires a struct pointer, got pointer to %v", val.Kind())
	}

	return replaceInStructValue(val, envMap, logger)
}

// replaceInStructValue is the recursive implementation for struct traversal
func replaceInStructValue(val reflect.Value, envMap map[string]string, logger arbor.ILogger) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			// Replace string field
			oldValue := field.String()
			newValue := ReplaceEnvReferences(oldValue, envMap, logger)
			if oldValue != newValue {
				field.SetString(newValue)
				logger.Debug().
					Str("field", fieldType.Name).
					Msg("Replaced environment reference in struct field")
			}

		case reflect.Struct:
			// Recursive call for nested struct
			if err := replaceInStructValue(field, envMap, logger); err != nil {
				return fmt.Errorf("failed to replace in nested struct field '%s': %w", fieldType.Name, err)
			}

		case reflect.Ptr:
			// Handle pointer fields
			if !field.IsNil() {
				elem := field.Elem()
				if elem.Kind() == reflect.Struct {
					if err := replaceInStructValue(elem, envMap, logger); err != nil {
						return fmt.Errorf("failed to replace in pointer field '%s': %w", fieldType.Name, err)
					}
				}
			}

		case reflect.Map:
			// Handle map fields
			if field.Type().Key().Kind() == reflect.String {
				elemKind := field.Type().Elem().Kind()

				if elemKind == reflect.Interface {
					// This is a map[string]interface{} - convert and replace
					mapVal := field.Interface().(map[string]interface{})
					if err := ReplaceInMap(mapVal, envMap, logger); err != nil {
						return fmt.Errorf("failed to replace in map field '%s': %w", fieldType.Name, err)
					}
				} else if elemKind == reflect.String {
					// This is a map[string]string - iterate and replace string values
					mapVal := field.Interface().(map[string]string)
					for key, value := range mapVal {
						oldValue := value
						newValue := ReplaceEnvReferences(value, envMap, logger)
						if oldValue != newValue {
							mapVal[key] = newValue
							logger.Debug().
								Str("field", fieldType.Name).
								Str("key", key).
								Msg("Replaced environment reference in map[string]string field")
						}
					}
				}
			}

		case reflect.Slice:
			// Handle slices of strings and slices of structs (e.g., scrape targets)
			switch field.Type().Elem().Kind() {
			case reflect.String:
				for i := 0; i < field.Len(); i++ {
					elem := field.Index(i)
					oldValue := elem.String()
					newValue := ReplaceEnvReferences(oldValue, envMap, logger)
					if oldValue != newValue {
						elem.SetString(newValue)
						logger.Debug().
							Str("field", fieldType.Name).
							Int("index", i).
							Msg("Replaced environment reference in slice field")
					}
				}
			case reflect.Struct:
				for i := 0; i < field.Len(); i++ {
					if err := replaceInStructValue(field.Index(i), envMap, logger); err != nil {
						return fmt.Errorf("failed to replace in slice field '%s'[%d]: %w", fieldType.Name, i, err)
					}
				}
			}
		}
	}

	return nil
}
