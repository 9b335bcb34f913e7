package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 3 // CATEGORY, RULE, DESCRIPTION
	minCategoryWidth = 10
	minRuleWidth     = 12
	minDescWidth     = 30
	heavySeparator   = "="
	lightSeparator   = "-"
	ellipsis         = "..."
	defaultTermWidth = 100
)

// TableRow is one rule in the listing.
type TableRow struct {
	Category    string
	Rule        string
	Description string
}

// RuleTable formats extracted rule groups as a styled table.
type RuleTable struct {
	styles    *Styles
	termWidth int
}

// NewRuleTable creates a table formatter. A non-positive termWidth selects
// the fallback width.
func NewRuleTable(styles *Styles, termWidth int) *RuleTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	if styles == nil {
		styles = NewStyles(false)
	}
	return &RuleTable{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	category int
	rule     int
	desc     int
}

func (w columnWidths) total() int {
	return w.category + w.rule + w.desc + tablePadding*tableColumnCount
}

// Format renders groups as one table with a light separator between
// categories and a closing summary line. Rule identifiers follow format.
func (t *RuleTable) Format(groups []ruledoc.Group, format config.RuleFormat) string {
	rowGroups := collectRows(groups, format)
	if len(rowGroups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rowGroups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, rows := range rowGroups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for j, row := range rows {
			// Category is shown on the first row of its block only.
			if j > 0 {
				row.Category = ""
			}
			builder.WriteString(t.formatRow(row, widths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableLegend.Render(
		" " + CountSummary(len(rowGroups), ruledoc.CountRules(groups)),
	))
	builder.WriteString("\n")

	return builder.String()
}

func collectRows(groups []ruledoc.Group, format config.RuleFormat) [][]TableRow {
	var out [][]TableRow
	for _, group := range groups {
		if len(group.Rules) == 0 {
			continue
		}
		rows := make([]TableRow, 0, len(group.Rules))
		for _, rule := range group.Rules {
			rows = append(rows, TableRow{
				Category:    group.Category,
				Rule:        config.FormatRuleID(format, group.ID, rule.Name),
				Description: rule.Description,
			})
		}
		out = append(out, rows)
	}
	return out
}

// calculateColumnWidths sizes columns to content, then shrinks the
// description and category columns to fit the terminal.
func (t *RuleTable) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		category: minCategoryWidth,
		rule:     minRuleWidth,
		desc:     minDescWidth,
	}

	for _, rows := range groups {
		for _, row := range rows {
			widths.category = max(widths.category, utf8.RuneCountInString(row.Category))
			widths.rule = max(widths.rule, utf8.RuneCountInString(row.Rule))
			widths.desc = max(widths.desc, utf8.RuneCountInString(row.Description))
		}
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.desc = max(minDescWidth, widths.desc-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.category = max(minCategoryWidth, widths.category-excess)
	}

	return widths
}

func (t *RuleTable) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %s  %s  %s ",
		padRight("CATEGORY", widths.category),
		padRight("RULE", widths.rule),
		padRight("DESCRIPTION", widths.desc),
	)
	return t.styles.TableHeader.Render(header)
}

func (t *RuleTable) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, widths.total()))
}

func (t *RuleTable) formatRow(row TableRow, widths columnWidths) string {
	category := padRight(truncateString(row.Category, widths.category), widths.category)
	rule := padRight(truncateString(row.Rule, widths.rule), widths.rule)
	desc := truncateString(row.Description, widths.desc)

	return fmt.Sprintf(" %s  %s  %s",
		t.styles.Category.Render(category),
		t.styles.RuleName.Render(rule),
		t.styles.Description.Render(desc),
	)
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncateString shortens str to maxLen runes, ending in "..." if cut.
func truncateString(str string, maxLen int) string {
	if utf8.RuneCountInString(str) <= maxLen {
		return str
	}
	runes := []rune(str)
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
