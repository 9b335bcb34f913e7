package configloader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/eslintgen/pkg/config"
)

// envVarPrefix is the prefix for all eslintgen environment variables.
const envVarPrefix = "ESLINTGEN_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeDuration
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"SOURCE":      {field: "source", typ: envTypeString, description: "Rules page URL or local path"},
	"OUTPUT_DIR":  {field: "output_dir", typ: envTypeString, description: "Directory generated files are written to"},
	"BASE_NAME":   {field: "base_name", typ: envTypeString, description: "File name stem for generated files"},
	"README_NAME": {field: "readme_name", typ: envTypeString, description: "Name of the description document"},
	"TIMEOUT":     {field: "timeout", typ: envTypeDuration, description: "Fetch timeout, e.g. 30s (0 = none)"},
	"USER_AGENT":  {field: "user_agent", typ: envTypeString, description: "User-Agent header for HTTP fetches"},
	"HEADING_TAG": {field: "heading_tag", typ: envTypeString, description: "Element introducing a rule category"},
	"EXCLUDE":     {field: "exclude", typ: envTypeSlice, description: "Comma-separated category ids to skip"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ESLINTGEN_ (e.g., ESLINTGEN_SOURCE).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %q (expected e.g. 30s, 2m)", envVar, value)
		}
		cfg.Timeout = d
		return nil
	case envTypeSlice:
		cfg.Exclude = parseSliceValue(value)
		return nil
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "source":
		cfg.Source = value
	case "output_dir":
		cfg.OutputDir = value
	case "base_name":
		cfg.BaseName = value
	case "readme_name":
		cfg.ReadmeName = value
	case "user_agent":
		cfg.UserAgent = value
	case "heading_tag":
		cfg.HeadingTag = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
