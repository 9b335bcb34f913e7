package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/eslintgen/pkg/generate"
)

const summaryDividerWidth = 40

// FormatWritten lists each written file followed by a one-line summary.
// Example:
//
//	wrote .eslintrc.js
//	wrote .eslintrc.json
//	2 files from 23 rules in 4 categories
func (s *Styles) FormatWritten(result *generate.Result) string {
	if result == nil {
		return ""
	}

	var builder strings.Builder
	for _, path := range result.Written {
		builder.WriteString(s.Success.Render("wrote"))
		builder.WriteString(" ")
		builder.WriteString(s.Path.Render(path))
		builder.WriteString("\n")
	}

	builder.WriteString(s.Dim.Render(strings.Repeat("-", summaryDividerWidth)))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("%s from %s\n",
		s.SummaryValue.Render(plural(len(result.Written), "file", "files")),
		CountSummary(result.Groups, result.Rules),
	))

	return builder.String()
}

// FormatFailure formats a one-line failure message.
func (s *Styles) FormatFailure(msg string) string {
	return s.Failure.Render("error:") + " " + msg + "\n"
}

// CountSummary reads like "23 rules in 4 categories".
func CountSummary(groups, rules int) string {
	return plural(rules, "rule", "rules") + " in " + plural(groups, "category", "categories")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
