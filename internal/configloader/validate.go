package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/fetch"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "base_name").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, _, err := fetch.Classify(cfg.Source); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source",
			Value:   cfg.Source,
			Message: fmt.Sprintf("invalid source: %v", err),
		})
	}

	validateFileName(result, "base_name", cfg.BaseName)
	validateFileName(result, "readme_name", cfg.ReadmeName)

	if cfg.Timeout < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "timeout",
			Value:   cfg.Timeout,
			Message: "timeout must be >= 0 (0 means no timeout)",
		})
	}

	if !isTagName(cfg.HeadingTag) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "heading_tag",
			Value:   cfg.HeadingTag,
			Message: fmt.Sprintf("invalid element name %q", cfg.HeadingTag),
		})
	}

	for i, id := range cfg.Exclude {
		if strings.TrimSpace(id) == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Value:   id,
				Message: "empty category id has no effect",
			})
		}
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// validateFileName requires a bare file name: generated files always land
// in output_dir.
func validateFileName(result *ValidationResult, field, name string) {
	switch {
	case name == "":
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   name,
			Message: "must not be empty",
		})
	case strings.ContainsAny(name, `/\`):
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   name,
			Message: fmt.Sprintf("%q must be a file name, not a path; use output_dir", name),
		})
	}
}

func isTagName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
