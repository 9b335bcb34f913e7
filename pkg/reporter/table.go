package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/eslintgen/internal/ui/pretty"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// TableReporter formats groups as a styled table sized to the terminal.
type TableReporter struct {
	opts  Options
	table *pretty.RuleTable
	bw    *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	width := opts.TermWidth
	if width <= 0 {
		width = getTerminalWidth(opts.Writer)
	}

	return &TableReporter{
		opts:  opts,
		table: pretty.NewRuleTable(styles, width),
		bw:    bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, groups []ruledoc.Group) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if _, err := io.WriteString(r.bw, r.table.Format(groups, r.opts.RuleFormat)); err != nil {
		return 0, fmt.Errorf("write table: %w", err)
	}

	return ruledoc.CountRules(groups), nil
}

// getTerminalWidth returns the terminal width, or zero (the table's
// fallback) when w is not a terminal.
func getTerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
