package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/eslintgen/internal/ui/pretty"
	"github.com/yaklabco/eslintgen/pkg/generate"
)

func TestFormatWritten(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatWritten(&generate.Result{
		Written: []string{".eslintrc.js", ".eslintrc.json"},
		Groups:  4,
		Rules:   23,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"wrote .eslintrc.js",
		"wrote .eslintrc.json",
		strings.Repeat("-", 40),
		"2 files from 23 rules in 4 categories",
	}, lines)
}

func TestFormatWritten_Singular(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatWritten(&generate.Result{
		Written: []string{"myrules.yaml"},
		Groups:  1,
		Rules:   1,
	})
	assert.Contains(t, out, "1 file from 1 rule in 1 category")
}

func TestFormatWritten_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pretty.NewStyles(false).FormatWritten(nil))
}

func TestFormatFailure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error: boom\n", pretty.NewStyles(false).FormatFailure("boom"))
}
