package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/eslintgen/pkg/render"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

func sampleGroups() []ruledoc.Group {
	return []ruledoc.Group{
		{
			Category: "Possible Errors",
			ID:       "possible-errors",
			Rules: []ruledoc.Rule{
				{Name: "for-direction", Description: `enforce "for" loop update clause moving the counter in the right direction.`},
				{Name: "no-await-in-loop", Description: "disallow await inside of loops"},
			},
		},
		{
			Category: "Best Practices",
			ID:       "best-practices",
			Rules: []ruledoc.Rule{
				{Name: "accessor-pairs", Description: "enforce getter and setter pairs in objects"},
				{Name: "no-implied-eval", Description: "disallow the use of eval()-like methods // even via setTimeout"},
			},
		},
		{
			Category: "Stylistic Issues",
			ID:       "stylistic-issues",
			Rules: []ruledoc.Rule{
				{Name: "semi", Description: "require or disallow semicolons instead of ASI"},
			},
		},
	}
}

func fixedDate() render.Options {
	return render.Options{Date: time.Date(2018, time.March, 4, 12, 0, 0, 0, time.UTC)}
}

func allRuleNames(groups []ruledoc.Group) []string {
	var names []string
	for _, g := range groups {
		for _, r := range g.Rules {
			names = append(names, r.Name)
		}
	}
	return names
}

// ruleKey is the text a rule entry starts with after its indentation.
func ruleKey(target render.Target, name string) string {
	if target.Braced() {
		return `"` + name + `": 0`
	}
	return name + ": 0"
}

// stripLineComments removes // comments that sit outside string literals.
func stripLineComments(src string) string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		inString := false
		for j := 0; j < len(l); j++ {
			switch {
			case l[j] == '\\' && inString:
				j++
			case l[j] == '"':
				inString = !inString
			case !inString && strings.HasPrefix(l[j:], "//"):
				l = l[:j]
			}
		}
		lines[i] = l
	}
	return strings.Join(lines, "\n")
}

func TestRender_EveryRuleOnceInOrder(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()

	for _, target := range render.Targets() {
		t.Run(target.Name(), func(t *testing.T) {
			t.Parallel()

			out := render.Render(groups, target, fixedDate())

			offset := 0
			for _, g := range groups {
				header := strings.Index(out[offset:], " "+g.Category+" ")
				require.GreaterOrEqual(t, header, 0, "group %q missing or out of order", g.Category)
				offset += header

				for _, r := range g.Rules {
					key := ruleKey(target, r.Name)
					assert.Equal(t, 1, strings.Count(out, key), "rule %q must appear exactly once", r.Name)

					idx := strings.Index(out[offset:], key)
					require.GreaterOrEqual(t, idx, 0, "rule %q out of order", r.Name)
					offset += idx
				}
			}
		})
	}
}

func TestRender_SeparatorOnlyOmittedForLastRule(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	names := allRuleNames(groups)

	for _, target := range []render.Target{render.JS, render.JSON} {
		t.Run(target.Name(), func(t *testing.T) {
			t.Parallel()

			out := render.Render(groups, target, fixedDate())

			for i, name := range names {
				key := ruleKey(target, name)
				if i == len(names)-1 {
					assert.Contains(t, out, key+" ")
					assert.NotContains(t, out, key+",")
				} else {
					assert.Contains(t, out, key+",")
				}
			}

			assert.Contains(t, out, `"greasemonkey": false `)
			assert.NotContains(t, out, `"greasemonkey": false,`)
			assert.Contains(t, out, `"browser": false,`)
		})
	}

	t.Run("yaml has no separators", func(t *testing.T) {
		t.Parallel()

		out := render.Render(groups, render.YAML, fixedDate())
		for _, name := range names {
			assert.NotContains(t, out, name+": 0,")
		}
	})
}

func TestRender_TrailingEmptyGroupKeepsBraceValidity(t *testing.T) {
	t.Parallel()

	groups := append(sampleGroups(), ruledoc.Group{Category: "Empty", ID: "empty"})

	out := render.Render(groups, render.JSON, fixedDate())
	assert.Contains(t, out, `"semi": 0 `)
	assert.NotContains(t, out, `"semi": 0,`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stripLineComments(out)), &decoded))
}

func TestRender_ColumnAlignment(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()

	tests := []struct {
		target render.Target
		column int
	}{
		{render.JS, 48},
		{render.JSON, 48},
		{render.YAML, 41},
	}

	for _, testCase := range tests {
		t.Run(testCase.target.Name(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.column, testCase.target.Column())

			out := render.Render(groups, testCase.target, fixedDate())
			lines := strings.Split(out, "\n")

			checked := 0
			for _, l := range lines {
				trimmed := strings.TrimSpace(l)
				if !isEntryLine(testCase.target, trimmed, groups) {
					continue
				}
				checked++
				assert.Equal(t, testCase.column, strings.Index(l, " "+testCase.target.CommentSymbol()+" ")+1,
					"comment misaligned in %q", l)
			}
			assert.Equal(t, len(render.Environments())+len(allRuleNames(groups)), checked)
		})
	}
}

// isEntryLine reports whether trimmed is an env or rule entry.
func isEntryLine(target render.Target, trimmed string, groups []ruledoc.Group) bool {
	for _, env := range render.Environments() {
		prefix := env.Name + ": false"
		if target.Braced() {
			prefix = `"` + env.Name + `": false`
		}
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	for _, name := range allRuleNames(groups) {
		if strings.HasPrefix(trimmed, ruleKey(target, name)) {
			return true
		}
	}
	return false
}

func TestRender_OverlongEntryKeepsOneSpace(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 60)
	groups := []ruledoc.Group{{Category: "Long", Rules: []ruledoc.Rule{{Name: long, Description: "very long"}}}}

	out := render.Render(groups, render.YAML, fixedDate())
	assert.Contains(t, out, "    "+long+": 0 # very long\n")
}

func TestRender_StableExceptDate(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()

	for _, target := range render.Targets() {
		first := render.Render(groups, target, fixedDate())
		second := render.Render(groups, target, fixedDate())
		assert.Equal(t, first, second, target.Name())

		later := render.Render(groups, target, render.Options{Date: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)})
		assert.NotEqual(t, first, later)
		assert.Equal(t,
			strings.ReplaceAll(first, "2018-03-04", "DATE"),
			strings.ReplaceAll(later, "2020-01-01", "DATE"),
			target.Name())
	}
}

func TestRender_DateLine(t *testing.T) {
	t.Parallel()

	out := render.Render(sampleGroups(), render.JSON, fixedDate())
	assert.Contains(t, out, "    // Updated on 2018-03-04.\n")
	assert.Contains(t, out, "    // [JSON]\n")

	out = render.Render(sampleGroups(), render.YAML, fixedDate())
	assert.Contains(t, out, "# Updated on 2018-03-04.\n")
	assert.Contains(t, out, "# [YAML]\n")
}

func TestRender_OpeningAndClosingTokens(t *testing.T) {
	t.Parallel()

	js := render.Render(sampleGroups(), render.JS, fixedDate())
	assert.True(t, strings.HasPrefix(js, "module.exports = {\n"))
	assert.True(t, strings.HasSuffix(js, "    }\n\n}\n"))

	jsonOut := render.Render(sampleGroups(), render.JSON, fixedDate())
	assert.True(t, strings.HasPrefix(jsonOut, "{\n"))
	assert.True(t, strings.HasSuffix(jsonOut, "}\n"))

	yamlOut := render.Render(sampleGroups(), render.YAML, fixedDate())
	assert.True(t, strings.HasPrefix(yamlOut, "# [YAML]\n"))
	assert.Equal(t, strings.Count(jsonOut, "{"), strings.Count(jsonOut, "}"))
}

func TestRender_GroupHeaders(t *testing.T) {
	t.Parallel()

	jsonOut := render.Render(sampleGroups(), render.JSON, fixedDate())
	assert.Contains(t, jsonOut, "        //////// Possible Errors ////////\n")

	yamlOut := render.Render(sampleGroups(), render.YAML, fixedDate())
	assert.Contains(t, yamlOut, "    ######## Possible Errors ########\n")
	assert.Contains(t, yamlOut, "    #         quotes: [2, double]\n")
}

func TestRender_JSONIsValidAfterStrippingComments(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	out := render.Render(groups, render.JSON, fixedDate())

	var decoded struct {
		ParserOptions struct {
			EcmaFeatures map[string]bool `json:"ecmaFeatures"`
		} `json:"parserOptions"`
		Env     map[string]bool `json:"env"`
		Globals map[string]any  `json:"globals"`
		Plugins []string        `json:"plugins"`
		Extends []string        `json:"extends"`
		Rules   map[string]int  `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(stripLineComments(out)), &decoded))

	assert.Len(t, decoded.Env, len(render.Environments()))
	for _, enabled := range decoded.Env {
		assert.False(t, enabled)
	}
	assert.Len(t, decoded.ParserOptions.EcmaFeatures, 4)
	assert.Empty(t, decoded.Globals)
	assert.Empty(t, decoded.Plugins)
	assert.Empty(t, decoded.Extends)

	require.Len(t, decoded.Rules, len(allRuleNames(groups)))
	for _, name := range allRuleNames(groups) {
		assert.Equal(t, 0, decoded.Rules[name])
	}
}

func TestRender_JSIsValidObjectLiteral(t *testing.T) {
	t.Parallel()

	out := render.Render(sampleGroups(), render.JS, fixedDate())
	body := strings.TrimPrefix(out, "module.exports = ")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stripLineComments(body)), &decoded))
	assert.Contains(t, decoded, "rules")
}

func TestRender_YAMLParses(t *testing.T) {
	t.Parallel()

	groups := sampleGroups()
	out := render.Render(groups, render.YAML, fixedDate())

	var decoded struct {
		ParserOptions struct {
			EcmaFeatures map[string]bool `yaml:"ecmaFeatures"`
		} `yaml:"parserOptions"`
		Env   map[string]bool `yaml:"env"`
		Rules map[string]int  `yaml:"rules"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	assert.Len(t, decoded.Env, len(render.Environments()))
	assert.Len(t, decoded.ParserOptions.EcmaFeatures, 4)
	require.Len(t, decoded.Rules, len(allRuleNames(groups)))
	for _, name := range allRuleNames(groups) {
		assert.Equal(t, 0, decoded.Rules[name])
	}
}

func TestRender_KeysNeedingQuotesStayValid(t *testing.T) {
	t.Parallel()

	groups := []ruledoc.Group{{
		Category: "Odd Names",
		ID:       "odd-names",
		Rules: []ruledoc.Rule{
			{Name: `no-"quoted"`, Description: "has quotes"},
			{Name: `back\slash`, Description: "has a backslash"},
			{Name: "@scope/rule", Description: "scoped plugin rule"},
			{Name: "null", Description: "reserved word in YAML"},
			{Name: "2fa", Description: "starts with a digit"},
			{Name: "plain-name", Description: "needs no quoting"},
		},
	}}
	names := allRuleNames(groups)

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		out := render.Render(groups, render.JSON, fixedDate())
		var decoded struct {
			Rules map[string]int `json:"rules"`
		}
		require.NoError(t, json.Unmarshal([]byte(stripLineComments(out)), &decoded))
		assert.Len(t, decoded.Rules, len(names))
		for _, name := range names {
			assert.Contains(t, decoded.Rules, name)
		}
	})

	t.Run("js", func(t *testing.T) {
		t.Parallel()

		out := render.Render(groups, render.JS, fixedDate())
		body := strings.TrimPrefix(out, "module.exports = ")
		var decoded struct {
			Rules map[string]int `json:"rules"`
		}
		require.NoError(t, json.Unmarshal([]byte(stripLineComments(body)), &decoded))
		assert.Len(t, decoded.Rules, len(names))
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		out := render.Render(groups, render.YAML, fixedDate())
		var decoded struct {
			Rules map[string]int `yaml:"rules"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Len(t, decoded.Rules, len(names))
		for _, name := range names {
			assert.Contains(t, decoded.Rules, name)
		}
		assert.Contains(t, out, "\n    plain-name: 0")
		assert.Contains(t, out, `"null": 0`)
	})
}

func TestRender_NoGroups(t *testing.T) {
	t.Parallel()

	out := render.Render(nil, render.JSON, fixedDate())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stripLineComments(out)), &decoded))
	assert.Empty(t, decoded["rules"])
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		wantOK bool
	}{
		{"js", true},
		{"json", true},
		{"yaml", true},
		{"JSON", false},
		{"yml", false},
		{"xml", false},
		{"", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			target, ok := render.Lookup(testCase.name)
			assert.Equal(t, testCase.wantOK, ok)
			if ok {
				assert.Equal(t, testCase.name, target.Name())
			}
		})
	}

	assert.Equal(t, []string{"js", "json", "yaml"}, render.Names())
}

func TestEnvironments(t *testing.T) {
	t.Parallel()

	envs := render.Environments()
	require.Len(t, envs, 25)
	assert.Equal(t, "browser", envs[0].Name)
	assert.Equal(t, "greasemonkey", envs[len(envs)-1].Name)

	seen := make(map[string]bool)
	for _, env := range envs {
		assert.False(t, seen[env.Name], "duplicate env %q", env.Name)
		seen[env.Name] = true
		assert.NotEmpty(t, env.Description)
	}
}
