// Package config defines the configuration types for eslintgen.
// These types are plain data; loading and merging live in internal/configloader.
package config

import "time"

// Defaults for generated output.
const (
	DefaultSource     = "https://eslint.org/docs/rules/"
	DefaultOutputDir  = "."
	DefaultBaseName   = ".eslintrc"
	DefaultReadmeName = "README.md"
	DefaultHeadingTag = "h2"
	DefaultUserAgent  = "eslintgen (+https://github.com/yaklabco/eslintgen)"
)

// RuleFormat controls how rule identifiers appear in listings.
type RuleFormat string

const (
	RuleFormatName      RuleFormat = "name"      // "no-console"
	RuleFormatQualified RuleFormat = "qualified" // "possible-errors/no-console"
)

// IsValid returns true if the rule format is known.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatQualified:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for eslintgen.
type Config struct {
	// Source is the rules page: an http(s) URL, a file:// URL or a local path.
	Source string `yaml:"source,omitempty"`

	// OutputDir is the directory generated files are written to.
	OutputDir string `yaml:"output_dir,omitempty"`

	// BaseName is the file name stem used when no filename is given.
	BaseName string `yaml:"base_name,omitempty"`

	// ReadmeName is the description document written alongside a full set.
	ReadmeName string `yaml:"readme_name,omitempty"`

	// Timeout bounds the page fetch. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent is sent with HTTP requests.
	UserAgent string `yaml:"user_agent,omitempty"`

	// HeadingTag is the element that introduces a rule category.
	HeadingTag string `yaml:"heading_tag,omitempty"`

	// Exclude lists category heading ids that are skipped.
	Exclude []string `yaml:"exclude,omitempty"`
}

// NewConfig returns a Config with the defaults matching the upstream page.
func NewConfig() *Config {
	return &Config{
		Source:     DefaultSource,
		OutputDir:  DefaultOutputDir,
		BaseName:   DefaultBaseName,
		ReadmeName: DefaultReadmeName,
		UserAgent:  DefaultUserAgent,
		HeadingTag: DefaultHeadingTag,
		Exclude:    []string{"deprecated", "removed"},
	}
}
