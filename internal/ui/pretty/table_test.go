package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/eslintgen/internal/ui/pretty"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

func sampleGroups() []ruledoc.Group {
	return []ruledoc.Group{
		{
			Category: "Possible Errors",
			ID:       "possible-errors",
			Rules: []ruledoc.Rule{
				{Name: "for-direction", Description: "enforce “for” loop update clause moving the counter in the right direction."},
				{Name: "no-await-in-loop", Description: "disallow await inside of loops"},
			},
		},
		{Category: "Empty", ID: "empty"},
		{
			Category: "ECMAScript 6",
			ID:       "es6",
			Rules:    []ruledoc.Rule{{Name: "arrow-body-style", Description: "require braces around arrow function bodies"}},
		},
	}
}

func TestRuleTable_Format(t *testing.T) {
	t.Parallel()

	table := pretty.NewRuleTable(pretty.NewStyles(false), 200)
	out := table.Format(sampleGroups(), config.RuleFormatName)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)

	assert.Contains(t, lines[0], "CATEGORY")
	assert.Contains(t, lines[0], "RULE")
	assert.Contains(t, lines[0], "DESCRIPTION")
	assert.True(t, strings.HasPrefix(lines[1], "==="))
	assert.Contains(t, lines[2], "Possible Errors")
	assert.Contains(t, lines[2], "for-direction")
	assert.NotContains(t, lines[3], "Possible Errors", "category shown once per block")
	assert.Contains(t, lines[3], "no-await-in-loop")
	assert.True(t, strings.HasPrefix(lines[4], "---"))
	assert.Contains(t, lines[5], "arrow-body-style")
	assert.True(t, strings.HasPrefix(lines[6], "==="))
	assert.Equal(t, " 3 rules in 2 categories", lines[7])
	assert.NotContains(t, out, "Empty")
}

func TestRuleTable_QualifiedFormat(t *testing.T) {
	t.Parallel()

	out := pretty.NewRuleTable(nil, 200).Format(sampleGroups(), config.RuleFormatQualified)
	assert.Contains(t, out, "possible-errors/for-direction")
	assert.Contains(t, out, "es6/arrow-body-style")
}

func TestRuleTable_NarrowTerminalTruncates(t *testing.T) {
	t.Parallel()

	out := pretty.NewRuleTable(nil, 60).Format(sampleGroups(), config.RuleFormatName)
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "in the right direction.")
}

func TestRuleTable_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pretty.NewRuleTable(nil, 0).Format(nil, config.RuleFormatName))
	assert.Empty(t, pretty.NewRuleTable(nil, 0).Format([]ruledoc.Group{{Category: "x", ID: "x"}}, config.RuleFormatName))
}
