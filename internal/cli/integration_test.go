package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/eslintgen/internal/cli"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/reporter"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// workspace is an isolated working directory holding a copy of the rules
// page fixture. Tests using it change the process working directory and
// environment, so they do not run in parallel.
type workspace struct {
	dir    string
	source string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()

	page, err := os.ReadFile(filepath.Join("testdata", "rules.html"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	source := filepath.Join(dir, "rules.html")
	require.NoError(t, os.WriteFile(source, page, 0o644))

	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	return &workspace{dir: dir, source: source}
}

// run executes the root command and returns stdout.
func (w *workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

// generated lists the files in the workspace other than the fixture.
func (w *workspace) generated(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(w.dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if e.Name() == ".git" || e.Name() == "rules.html" {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

func TestIntegration_NoArgsWritesFullSet(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run(t, "--source", ws.source)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{".eslintrc.js", ".eslintrc.json", ".eslintrc.yaml", "README.md"},
		ws.generated(t))
	assert.Contains(t, out, "wrote .eslintrc.js")
	assert.Contains(t, out, "4 files from 6 rules in 3 categories")
}

func TestIntegration_SingleFiletype(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "--source", ws.source, "json")
	require.NoError(t, err)
	assert.Equal(t, []string{".eslintrc.json"}, ws.generated(t))
}

func TestIntegration_FiletypeAndFilename(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run(t, "--source", ws.source, "--quiet", "yaml", "myrules")
	require.NoError(t, err)
	assert.Equal(t, []string{"myrules.yaml"}, ws.generated(t))
	assert.Empty(t, out)

	content, err := os.ReadFile(filepath.Join(ws.dir, "myrules.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "######## ECMAScript 6 ########")
}

func TestIntegration_InvalidInvocationPrintsUsage(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "unknown filetype", args: []string{"xml"}},
		{name: "unknown filetype with filename", args: []string{"xml", "myrules"}},
		{name: "too many args", args: []string{"js", "a", "b"}, wantUsage: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ws := newWorkspace(t)

			// A source that cannot be read proves nothing is fetched.
			args := append([]string{"--source", filepath.Join(ws.dir, "missing.html")}, testCase.args...)
			out, err := ws.run(t, args...)
			require.NoError(t, err)

			assert.Contains(t, out, "Valid filetypes are: js, json, yaml")
			if testCase.wantUsage {
				assert.Contains(t, out, "Usage: eslintgen [filetype [filename]]")
				assert.Contains(t, out, "extension is automatically the selected filetype")
			} else {
				assert.NotContains(t, out, "Usage:")
			}
			assert.Empty(t, ws.generated(t))
		})
	}
}

func TestIntegration_FetchFailure(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "--source", filepath.Join(ws.dir, "missing.html"), "js")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
	assert.Empty(t, ws.generated(t))
}

func TestIntegration_MissingTable(t *testing.T) {
	ws := newWorkspace(t)

	broken := filepath.Join(ws.dir, "broken.html")
	require.NoError(t, os.WriteFile(broken, []byte(`<h2 id="possible-errors">Possible Errors</h2>`), 0o644))

	_, err := ws.run(t, "--source", broken)
	require.ErrorIs(t, err, ruledoc.ErrMissingTable)
}

func TestIntegration_ProjectConfigAndEnv(t *testing.T) {
	ws := newWorkspace(t)

	cfg := "source: " + ws.source + "\nbase_name: starter\n"
	require.NoError(t, os.WriteFile(filepath.Join(ws.dir, ".eslintgen.yml"), []byte(cfg), 0o644))
	t.Setenv("ESLINTGEN_OUTPUT_DIR", "out")

	_, err := ws.run(t, "js")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(ws.dir, "out", "starter.js"))

	_, err = ws.run(t, "--output-dir", "flags", "js")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(ws.dir, "flags", "starter.js"), "flags override env")
}

func TestIntegration_InvalidConfig(t *testing.T) {
	ws := newWorkspace(t)

	require.NoError(t, os.WriteFile(filepath.Join(ws.dir, ".eslintgen.yml"), []byte("base_name: a/b\n"), 0o644))

	_, err := ws.run(t, "--source", ws.source, "js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_name")
}

func TestIntegration_RulesJSON(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run(t, "rules", "--source", ws.source, "--format", "json")
	require.NoError(t, err)

	var listing reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	groups := listing.Groups
	require.Len(t, groups, 3)
	assert.Equal(t, "possible-errors", groups[0].ID)
	assert.Equal(t, "Best Practices", groups[1].Category)
	assert.Equal(t, "arrow-body-style", groups[2].Rules[0].Name)
	assert.Equal(t, reporter.JSONSummary{Groups: 3, Rules: 6}, listing.Summary)
	assert.Empty(t, ws.generated(t), "rules writes nothing")
}

func TestIntegration_RulesText(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run(t, "rules", "--source", ws.source, "--rule-format", "qualified")
	require.NoError(t, err)
	assert.Contains(t, out, "Possible Errors (possible-errors)")
	assert.Contains(t, out, "es6/arrow-body-style")
	assert.NotContains(t, out, "indent-legacy")
}

func TestIntegration_RulesTable(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run(t, "rules", "--source", ws.source, "--format", "table", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "block-scoped-var")
	assert.Contains(t, out, "6 rules in 3 categories")
}

func TestIntegration_RulesInvalidFormat(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "rules", "--source", ws.source, "--format", "xml")
	require.Error(t, err)

	_, err = ws.run(t, "rules", "--source", ws.source, "--rule-format", "id")
	require.Error(t, err)
}

func TestIntegration_Init(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "init", "--full")
	require.NoError(t, err)

	path := filepath.Join(ws.dir, ".eslintgen.yml")
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseName, cfg.BaseName)

	_, err = ws.run(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = ws.run(t, "init", "--force")
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "# base_name:"), "default template is commented out")
}

func TestIntegration_InitResolved(t *testing.T) {
	ws := newWorkspace(t)
	t.Setenv("ESLINTGEN_BASE_NAME", "myrules")

	_, err := ws.run(t, "init", "--resolved", "--source", ws.source, "--output", "snapshot.yml")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(ws.dir, "snapshot.yml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), config.DefaultTemplateHeader()))

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, ws.source, cfg.Source)
	assert.Equal(t, "myrules", cfg.BaseName)
	assert.Equal(t, config.NewConfig().Exclude, cfg.Exclude)

	_, err = ws.run(t, "init", "--resolved", "--full", "--output", "other.yml")
	require.Error(t, err)
}
