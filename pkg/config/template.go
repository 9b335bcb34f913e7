package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value.
	// If false, every setting is commented out.
	Full bool
}

// templateEntry is one documented setting of the template.
type templateEntry struct {
	comment []string
	key     string
	value   string
}

func templateEntries(defaults *Config) []templateEntry {
	return []templateEntry{
		{
			comment: []string{"Rules page to scrape: an http(s) URL, a file:// URL, or a local path"},
			key:     "source",
			value:   quote(defaults.Source),
		},
		{
			comment: []string{"Directory the generated files are written to"},
			key:     "output_dir",
			value:   quote(defaults.OutputDir),
		},
		{
			comment: []string{"File name stem used when no filename argument is given"},
			key:     "base_name",
			value:   quote(defaults.BaseName),
		},
		{
			comment: []string{"Description document written alongside the full set of files"},
			key:     "readme_name",
			value:   quote(defaults.ReadmeName),
		},
		{
			comment: []string{"Fetch timeout (e.g. 30s); 0 disables the timeout"},
			key:     "timeout",
			value:   defaults.Timeout.String(),
		},
		{
			comment: []string{"User-Agent header sent when fetching over HTTP"},
			key:     "user_agent",
			value:   quote(defaults.UserAgent),
		},
		{
			comment: []string{"Element that introduces a rule category on the page"},
			key:     "heading_tag",
			value:   quote(defaults.HeadingTag),
		},
	}
}

// GenerateTemplate creates a commented eslintgen configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	defaults := NewConfig()

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n")

	prefix := "# "
	if opts.Full {
		prefix = ""
	}

	for _, entry := range templateEntries(defaults) {
		buf.WriteString("\n")
		for _, line := range entry.comment {
			fmt.Fprintf(&buf, "# %s\n", line)
		}
		fmt.Fprintf(&buf, "%s%s: %s\n", prefix, entry.key, entry.value)
	}

	buf.WriteString("\n# Category heading ids that never produce a rule group\n")
	fmt.Fprintf(&buf, "%sexclude:\n", prefix)
	for _, id := range defaults.Exclude {
		fmt.Fprintf(&buf, "%s  - %s\n", prefix, id)
	}

	// Fail early if a future edit breaks the template.
	if opts.Full {
		if _, err := FromYAML(buf.Bytes()); err != nil {
			return nil, fmt.Errorf("template is not valid configuration: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# eslintgen configuration
# See: https://github.com/yaklabco/eslintgen`
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
