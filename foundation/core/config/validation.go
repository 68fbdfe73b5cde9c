// File: validation.go
// Title: Configuration Validation
// Description: Validates flattened configuration values against rules and
//              collects every violation instead of stopping at the first.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Required, one-of, pattern and minimum rules

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	"github.com/msto63/semshell/foundation/utils/mapx"
)

// ValidationRule defines validation criteria for one configuration value
type ValidationRule struct {
	Required bool     // Value must be non-empty
	OneOf    []string // Allowed values, compared case-insensitively
	Pattern  string   // Regex the value must match
	MinInt   *int     // Value must parse as an int no smaller than this
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise an INVALID_CONFIG error
// listing every violation
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", len(r.Errors))
}

// Validate checks values against rules. Keys are visited in sorted order so
// the error list is stable.
func Validate(rules ValidationRules, values map[string]string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, key := range mapx.SortedKeys(rules) {
		if err := validateField(key, values[key], rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func validateField(key, value string, rule ValidationRule) error {
	if strings.TrimSpace(value) == "" {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if len(rule.OneOf) > 0 {
		matched := false
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(allowed, value) {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("field '%s' must be one of [%s], got '%s'", key, strings.Join(rule.OneOf, ", "), value)
		}
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("field '%s' has an invalid pattern: %v", key, err)
		}
		if !re.MatchString(value) {
			return fmt.Errorf("field '%s' does not match pattern %s", key, rule.Pattern)
		}
	}

	if rule.MinInt != nil {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("field '%s' must be an integer, got '%s'", key, value)
		}
		if n < *rule.MinInt {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, *rule.MinInt, n)
		}
	}

	return nil
}
