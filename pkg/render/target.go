package render

import (
	"encoding/json"
	"strings"
)

// indentUnit is one level of indentation in every target.
const indentUnit = "    "

// Padding columns: inline comments start at this character offset.
const (
	braceColumn  = 48
	indentColumn = 41
)

// Target describes the syntax of one output format. Targets are values:
// copying one never shares state, and nothing in this package mutates them.
type Target struct {
	name      string
	comment   string
	opening   string
	closing   string
	column    int
	braces    bool
	headerRep int
	example   string
}

// Predefined targets, keyed by their filetype token.
//
//nolint:gochecknoglobals // Read-only target definitions.
var (
	JS = Target{
		name:      "js",
		comment:   "//",
		opening:   "module.exports = {",
		closing:   "}",
		column:    braceColumn,
		braces:    true,
		headerRep: 4,
		example:   `"quotes": [2, "double"]`,
	}

	JSON = Target{
		name:      "json",
		comment:   "//",
		opening:   "{",
		closing:   "}",
		column:    braceColumn,
		braces:    true,
		headerRep: 4,
		example:   `"quotes": [2, "double"]`,
	}

	YAML = Target{
		name:      "yaml",
		comment:   "#",
		column:    indentColumn,
		headerRep: 8,
		example:   `quotes: [2, double]`,
	}
)

// Targets returns every supported target in canonical order.
func Targets() []Target {
	return []Target{JS, JSON, YAML}
}

// Names returns the filetype tokens of every supported target.
func Names() []string {
	targets := Targets()
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.name)
	}
	return names
}

// Lookup returns the target for a filetype token. Matching is exact and
// case-sensitive.
func Lookup(name string) (Target, bool) {
	for _, t := range Targets() {
		if t.name == name {
			return t, true
		}
	}
	return Target{}, false
}

// Name returns the filetype token, which is also the file extension.
func (t Target) Name() string { return t.name }

// Column returns the character offset at which inline comments start.
func (t Target) Column() int { return t.column }

// CommentSymbol returns the line comment token.
func (t Target) CommentSymbol() string { return t.comment }

// Braced reports whether the format nests with braces and separates
// entries with commas.
func (t Target) Braced() bool { return t.braces }

// Label is the upper-cased name shown in the file description.
func (t Target) Label() string { return strings.ToUpper(t.name) }

// String implements fmt.Stringer.
func (t Target) String() string { return t.name }

// key renders a mapping key in the target's syntax. Brace formats always
// quote; YAML quotes only keys that would not read back as the same plain
// string.
func (t Target) key(name string) string {
	if t.braces || !plainYAMLKey(name) {
		return quoteKey(name) + ": "
	}
	return name + ": "
}

// quoteKey returns name as a double-quoted JSON string, which is also a
// valid JS string literal and a valid YAML double-quoted scalar.
func quoteKey(name string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(name) // encoding a string cannot fail
	return strings.TrimSuffix(b.String(), "\n")
}

// plainYAMLKey reports whether name can be written unquoted in YAML.
func plainYAMLKey(name string) bool {
	if name == "" {
		return false
	}
	switch strings.ToLower(name) {
	case "true", "false", "null", "yes", "no", "on", "off":
		return false
	}
	if first := name[0]; !(first >= 'a' && first <= 'z' || first >= 'A' && first <= 'Z') {
		return false
	}
	for _, r := range name {
		isWord := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
		if !isWord && !strings.ContainsRune("-_/.", r) {
			return false
		}
	}
	return true
}

// sep returns the entry separator, or nothing for the last entry of a
// brace-delimited block.
func (t Target) sep(last bool) string {
	if !t.braces || last {
		return ""
	}
	return ","
}

// blockOpen returns the line that opens a nested mapping.
func (t Target) blockOpen(name string) string {
	if t.braces {
		return t.key(name) + "{"
	}
	return name + ":"
}

// base is the indent level of top-level keys: brace formats sit inside the
// outer object.
func (t Target) base() int {
	if t.braces {
		return 1
	}
	return 0
}
