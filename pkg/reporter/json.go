package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Version string      `json:"version"`
	Groups  []JSONGroup `json:"groups"`
	Summary JSONSummary `json:"summary"`
}

// JSONGroup is one rule category.
type JSONGroup struct {
	Category string     `json:"category"`
	ID       string     `json:"id"`
	Rules    []JSONRule `json:"rules"`
}

// JSONRule is one rule. Identifier follows the configured rule format.
type JSONRule struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Description string `json:"description"`
}

// JSONSummary carries aggregate counts.
type JSONSummary struct {
	Groups int `json:"groups"`
	Rules  int `json:"rules"`
}

// JSONReporter formats groups as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, groups []ruledoc.Group) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(groups, r.opts.RuleFormat)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Rules, nil
}

func buildJSONOutput(groups []ruledoc.Group, ruleFormat config.RuleFormat) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Groups:  make([]JSONGroup, 0, len(groups)),
	}

	for _, group := range groups {
		jsonGroup := JSONGroup{
			Category: group.Category,
			ID:       group.ID,
			Rules:    make([]JSONRule, 0, len(group.Rules)),
		}
		for _, rule := range group.Rules {
			jsonGroup.Rules = append(jsonGroup.Rules, JSONRule{
				Name:        rule.Name,
				Identifier:  config.FormatRuleID(ruleFormat, group.ID, rule.Name),
				Description: rule.Description,
			})
		}
		output.Groups = append(output.Groups, jsonGroup)
		output.Summary.Rules += len(group.Rules)
	}
	output.Summary.Groups = len(output.Groups)

	return output
}
