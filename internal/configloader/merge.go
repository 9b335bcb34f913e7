package configloader

import (
	"slices"

	"github.com/yaklabco/eslintgen/pkg/config"
)

// merge returns a new configuration combining base and override, with
// override taking precedence. Neither input is modified or aliased.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//
// A zero timeout cannot reset a non-zero one from a lower layer.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Source != "" {
		result.Source = override.Source
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.BaseName != "" {
		result.BaseName = override.BaseName
	}
	if override.ReadmeName != "" {
		result.ReadmeName = override.ReadmeName
	}
	if override.Timeout != 0 {
		result.Timeout = override.Timeout
	}
	if override.UserAgent != "" {
		result.UserAgent = override.UserAgent
	}
	if override.HeadingTag != "" {
		result.HeadingTag = override.HeadingTag
	}

	if override.Exclude != nil {
		result.Exclude = slices.Clone(override.Exclude)
	}

	return result
}
