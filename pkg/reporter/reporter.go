// Package reporter writes listings of extracted rule groups.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// Reporter formats and writes rule groups.
type Reporter interface {
	// Report writes formatted output for the given groups.
	// It returns the number of rules reported and any write errors.
	Report(ctx context.Context, groups []ruledoc.Group) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.RuleFormat == "" {
		opts.RuleFormat = DefaultOptions().RuleFormat
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
