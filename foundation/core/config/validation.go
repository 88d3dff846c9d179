// File: validation.go
// Title: Configuration Validation
// Description: Rule based validation of configuration values: presence, type,
//              numeric or length bounds and string patterns. Defaults from
//              rules are applied to missing optional keys.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-10-19 v0.2.0: Defaults applied after the read pass, errors sorted

package config

import (
	"fmt"
	"regexp"
	"sort"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/stringx"
)

// ValidationRule describes the constraints for one key.
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int", "bool", "[]string".
	Type string
	// Min and Max bound ints, or the rune length of strings and slices.
	Min     *int
	Max     *int
	Pattern string
	Default interface{}
}

// ValidationRules maps keys to rules.
type ValidationRules map[string]ValidationRule

// ValidationResult lists every violated rule.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Err returns nil for a valid result, otherwise a CodeValidationFailed error.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return ulterror.New("configuration validation failed").
		WithCode(ulterror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// IntPtr is a helper for ValidationRule bounds.
func IntPtr(n int) *int { return &n }

// Validate checks c against rules and applies defaults for missing keys.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}
	defaults := make(map[string]interface{})

	c.mu.RLock()
	for key, rule := range rules {
		value := c.getPath(key)
		if value == nil {
			if rule.Required {
				result.Errors = append(result.Errors, fmt.Sprintf("required field '%s' is missing", key))
			} else if rule.Default != nil {
				defaults[key] = rule.Default
			}
			continue
		}
		if err := validateValue(key, value, rule); err != "" {
			result.Errors = append(result.Errors, err)
		}
	}
	c.mu.RUnlock()

	for key, value := range defaults {
		c.Set(key, value)
	}

	sort.Strings(result.Errors)
	result.Valid = len(result.Errors) == 0
	return result
}

func validateValue(key string, value interface{}, rule ValidationRule) string {
	var size int
	var sized bool

	switch rule.Type {
	case "":
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("field '%s' must be a string", key)
		}
		size, sized = stringx.Length(s), true
		if rule.Pattern != "" {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return fmt.Sprintf("field '%s' has invalid pattern %q", key, rule.Pattern)
			}
			if !re.MatchString(s) {
				return fmt.Sprintf("field '%s' does not match pattern %q", key, rule.Pattern)
			}
		}
	case "int":
		n, ok := toInt(value)
		if !ok {
			return fmt.Sprintf("field '%s' must be an integer", key)
		}
		size, sized = n, true
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("field '%s' must be a boolean", key)
		}
	case "[]string":
		items, ok := value.([]interface{})
		if !ok {
			return fmt.Sprintf("field '%s' must be a list", key)
		}
		size, sized = len(items), true
	default:
		return fmt.Sprintf("field '%s' has unknown rule type %q", key, rule.Type)
	}

	if !sized {
		return ""
	}
	if rule.Min != nil && size < *rule.Min {
		return fmt.Sprintf("field '%s' is below minimum %d", key, *rule.Min)
	}
	if rule.Max != nil && size > *rule.Max {
		return fmt.Sprintf("field '%s' is above maximum %d", key, *rule.Max)
	}
	return ""
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
