package cli

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/eslintgen/internal/configloader"
	"github.com/yaklabco/eslintgen/internal/ui/pretty"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/render"
)

// helpStyles colours the help output.
type helpStyles struct {
	heading lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{heading: plain, name: plain, dim: plain}
	}
	return helpStyles{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// helpWriter renders help and usage for eslintgen commands. The root
// command additionally lists the filetypes it accepts and the environment
// variables the configuration reads.
type helpWriter struct {
	styles helpStyles
}

func newHelpWriter(colorMode string, w io.Writer) *helpWriter {
	return &helpWriter{styles: newHelpStyles(pretty.IsColorEnabled(colorMode, w))}
}

// applyHelp installs the renderers on cmd; subcommands inherit them. Colour
// is decided per invocation so --color applies to help too.
func applyHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		h := newHelpWriter(colorMode(c), c.OutOrStdout())
		_, _ = io.WriteString(c.OutOrStdout(), h.help(c))
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		h := newHelpWriter(colorMode(c), c.OutOrStdout())
		_, err := io.WriteString(c.OutOrStdout(), h.usage(c))
		return err
	})
}

func (h *helpWriter) help(cmd *cobra.Command) string {
	var b strings.Builder
	if desc := strings.TrimSpace(cmp.Or(cmd.Long, cmd.Short)); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}
	b.WriteString(h.usage(cmd))
	return b.String()
}

func (h *helpWriter) usage(cmd *cobra.Command) string {
	var b strings.Builder
	root := !cmd.HasParent()

	h.section(&b, "Usage:", "  "+cmd.UseLine())
	if root {
		h.section(&b, "Filetypes:", h.filetypes())
	}
	if cmd.HasExample() {
		h.section(&b, "Examples:", cmd.Example)
	}
	if cmd.HasAvailableSubCommands() {
		h.section(&b, "Commands:", h.commands(cmd))
	}
	if cmd.HasAvailableLocalFlags() {
		h.section(&b, "Flags:", cmd.LocalFlags().FlagUsages())
	}
	if cmd.HasAvailableInheritedFlags() {
		h.section(&b, "Global Flags:", cmd.InheritedFlags().FlagUsages())
	}
	if root {
		h.section(&b, "Environment:", h.environment())
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "Use %q for more information about a command.\n", cmd.CommandPath()+" [command] --help")
	}

	return b.String()
}

func (h *helpWriter) section(b *strings.Builder, heading, body string) {
	b.WriteString(h.styles.heading.Render(heading))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n\n")
}

// filetypes lists each target with the file it writes by default.
func (h *helpWriter) filetypes() string {
	targets := render.Targets()
	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name())
	}
	width := maxWidth(names)

	var b strings.Builder
	for _, target := range targets {
		fmt.Fprintf(&b, "  %s  writes %s\n",
			h.styles.name.Render(rpad(target.Name(), width)),
			config.DefaultBaseName+"."+target.Name(),
		)
	}
	b.WriteString(h.styles.dim.Render("  A filename argument replaces " + config.DefaultBaseName +
		"; give it without the extension."))
	return b.String()
}

func (h *helpWriter) commands(cmd *cobra.Command) string {
	var b strings.Builder
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() && sub.Name() != "help" {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", h.styles.name.Render(rpad(sub.Name(), sub.NamePadding())), sub.Short)
	}
	return b.String()
}

func (h *helpWriter) environment() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)
	width := maxWidth(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %s  %s\n", h.styles.name.Render(rpad(name, width)), h.styles.dim.Render(vars[name]))
	}
	return b.String()
}

func maxWidth(values []string) int {
	width := 0
	for _, v := range values {
		width = max(width, utf8.RuneCountInString(v))
	}
	return width
}

func rpad(str string, padding int) string {
	n := utf8.RuneCountInString(str)
	if n >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-n)
}
