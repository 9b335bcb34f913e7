package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/eslintgen/pkg/fetch"
	"github.com/yaklabco/eslintgen/pkg/fsutil"
	"github.com/yaklabco/eslintgen/pkg/render"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// ErrEmptyPlan is returned by Run for a plan without outputs.
var ErrEmptyPlan = errors.New("plan has no outputs")

// Generator fetches the rules page once and writes every output of a plan.
type Generator struct {
	// Fetcher retrieves the page. Required.
	Fetcher fetch.Fetcher

	// Source is the page location handed to Fetcher.
	Source string

	// Extract controls rule extraction.
	Extract ruledoc.Options

	// Now supplies the date stamped into outputs. Defaults to time.Now.
	Now func() time.Time

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *log.Logger
}

// Result summarizes a completed run.
type Result struct {
	// Written lists output paths in plan order.
	Written []string

	// Groups is the number of rule categories extracted.
	Groups int

	// Rules is the total number of rules extracted.
	Rules int
}

// Run executes plan: fetch, extract, then render and write each output.
// Existing files are overwritten. On error, outputs written before the
// failure remain on disk and are listed in the partial result.
func (g *Generator) Run(ctx context.Context, plan Plan) (*Result, error) {
	if len(plan.Outputs) == 0 {
		return nil, ErrEmptyPlan
	}
	if g.Fetcher == nil {
		return nil, errors.New("generator has no fetcher")
	}

	logger := g.logger()

	groups, err := g.Groups(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Groups: len(groups),
		Rules:  ruledoc.CountRules(groups),
	}
	logger.Debug("extracted rules", "groups", result.Groups, "rules", result.Rules)

	opts := render.Options{Date: g.now()}
	for _, out := range plan.Outputs {
		var content string
		if out.Readme {
			content = render.Readme(opts)
		} else {
			content = render.Render(groups, out.Target, opts)
		}

		if err := writeOutput(ctx, out.Path, content); err != nil {
			return result, err
		}
		result.Written = append(result.Written, out.Path)
		logger.Debug("wrote", "path", out.Path)
	}

	return result, nil
}

// Groups fetches and extracts the rule groups without writing anything.
func (g *Generator) Groups(ctx context.Context) ([]ruledoc.Group, error) {
	g.logger().Debug("fetching rules page", "source", g.Source)

	page, err := g.Fetcher.Fetch(ctx, g.Source)
	if err != nil {
		return nil, fmt.Errorf("fetch rules page: %w", err)
	}

	groups, err := ruledoc.Extract(bytes.NewReader(page), g.Extract)
	if err != nil {
		return nil, fmt.Errorf("extract rules from %s: %w", g.Source, err)
	}

	return groups, nil
}

func writeOutput(ctx context.Context, path, content string) error {
	if err := fsutil.EnsureDir(ctx, filepath.Dir(path)); err != nil {
		return fmt.Errorf("prepare %s: %w", path, err)
	}
	if err := fsutil.WriteAtomic(ctx, path, []byte(content), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.New(io.Discard)
}
