// Package generate turns command-line arguments into a set of output files
// and produces them from the rules page.
package generate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/render"
)

// Sentinel errors for invalid invocations. Both mean "show usage".
var (
	// ErrUsage indicates a wrong number of positional arguments.
	ErrUsage = errors.New("wrong number of arguments")

	// ErrUnknownFormat indicates a filetype token that names no target.
	ErrUnknownFormat = errors.New("unknown filetype")
)

// maxArgs is the most positional arguments an invocation accepts.
const maxArgs = 2

// PlanOptions controls where planned outputs are written.
type PlanOptions struct {
	// Dir is the output directory. Defaults to ".".
	Dir string

	// BaseName is the file stem used when no filename is given.
	// Defaults to ".eslintrc".
	BaseName string

	// ReadmeName is the description document written with a full set.
	// Defaults to "README.md".
	ReadmeName string
}

func (o PlanOptions) withDefaults() PlanOptions {
	if o.Dir == "" {
		o.Dir = config.DefaultOutputDir
	}
	if o.BaseName == "" {
		o.BaseName = config.DefaultBaseName
	}
	if o.ReadmeName == "" {
		o.ReadmeName = config.DefaultReadmeName
	}
	return o
}

// Output is a single file the plan produces.
type Output struct {
	// Path is the destination, already joined with the output directory.
	Path string

	// Target is the config format. Unset when Readme is true.
	Target render.Target

	// Readme marks the description document.
	Readme bool
}

// Plan is the validated list of outputs for one invocation.
type Plan struct {
	Outputs []Output
}

// NewPlan interprets positional arguments:
//
//	(none)          every target with the default stem, plus the README
//	filetype        one target with the default stem
//	filetype name   one target written as name.filetype
//
// Filetype tokens are case-sensitive. Nothing is fetched or written here.
func NewPlan(args []string, opts PlanOptions) (Plan, error) {
	opts = opts.withDefaults()

	if len(args) > maxArgs {
		return Plan{}, fmt.Errorf("%w: got %d, want at most %d", ErrUsage, len(args), maxArgs)
	}

	if len(args) == 0 {
		var plan Plan
		for _, target := range render.Targets() {
			plan.Outputs = append(plan.Outputs, Output{
				Path:   filepath.Join(opts.Dir, fileName(opts.BaseName, target)),
				Target: target,
			})
		}
		plan.Outputs = append(plan.Outputs, Output{
			Path:   filepath.Join(opts.Dir, opts.ReadmeName),
			Readme: true,
		})
		return plan, nil
	}

	target, ok := render.Lookup(args[0])
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, args[0], strings.Join(render.Names(), ", "))
	}

	stem := opts.BaseName
	if len(args) == maxArgs {
		stem = args[1]
		// An empty stem would produce a bare hidden ".<ext>" file.
		if stem == "" {
			return Plan{}, fmt.Errorf("%w: empty filename", ErrUsage)
		}
	}

	return Plan{Outputs: []Output{{
		Path:   filepath.Join(opts.Dir, fileName(stem, target)),
		Target: target,
	}}}, nil
}

// IsUsageError reports whether err means the invocation itself was invalid.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownFormat)
}

func fileName(stem string, target render.Target) string {
	return stem + "." + target.Name()
}

// Paths returns the destination of every output, in order.
func (p Plan) Paths() []string {
	paths := make([]string, 0, len(p.Outputs))
	for _, out := range p.Outputs {
		paths = append(paths, out.Path)
	}
	return paths
}
