package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/eslintgen/internal/ui/pretty"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// TextReporter formats groups as styled terminal output:
//
//	Possible Errors (possible-errors)
//	  for-direction     enforce "for" loop update clause ...
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, groups []ruledoc.Group) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if len(groups) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No rule groups found."))
		return 0, nil
	}

	width := identifierWidth(groups, r.opts.RuleFormat)
	total := 0

	for i, group := range groups {
		select {
		case <-ctx.Done():
			return total, fmt.Errorf("report cancelled: %w", ctx.Err())
		default:
		}

		if i > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprintf(r.bw, "%s %s\n",
			r.styles.Category.Render(group.Category),
			r.styles.CategoryID.Render("("+group.ID+")"),
		)

		for _, rule := range group.Rules {
			id := config.FormatRuleID(r.opts.RuleFormat, group.ID, rule.Name)
			padding := strings.Repeat(" ", width-utf8.RuneCountInString(id))
			fmt.Fprintf(r.bw, "  %s%s  %s\n",
				r.styles.RuleName.Render(id),
				padding,
				r.styles.Description.Render(rule.Description),
			)
		}
		total += len(group.Rules)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render(pretty.CountSummary(len(groups), total)))
	}

	return total, nil
}

func identifierWidth(groups []ruledoc.Group, ruleFormat config.RuleFormat) int {
	width := 0
	for _, group := range groups {
		for _, rule := range group.Rules {
			width = max(width, utf8.RuneCountInString(config.FormatRuleID(ruleFormat, group.ID, rule.Name)))
		}
	}
	return width
}
