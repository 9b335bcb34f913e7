// Package cli provides the Cobra command structure for eslintgen.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/eslintgen/internal/logging"
	"github.com/yaklabco/eslintgen/internal/ui/pretty"
	"github.com/yaklabco/eslintgen/pkg/generate"
	"github.com/yaklabco/eslintgen/pkg/render"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	quiet bool
}

// NewRootCommand creates the root eslintgen command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "eslintgen [filetype [filename]]",
		Short: "Generate .eslintrc starter files from the ESLint rules page",
		Long: `eslintgen scrapes the ESLint rules documentation page and writes .eslintrc
starter files listing every rule (set to 0) and every environment (set to
false), grouped by category with each rule's description as a comment.

With no arguments it writes .eslintrc.js, .eslintrc.json, .eslintrc.yaml and
README.md. With a filetype it writes only that format, and with a filename it
uses that name instead of .eslintrc (the extension is added automatically).`,
		Example: `  eslintgen                  Write all three starter files and README.md
  eslintgen json             Write .eslintrc.json
  eslintgen yaml myrules     Write myrules.yaml
  eslintgen --source rules.html --output-dir out`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
			}
			logger := logging.New(level)
			logging.SetDefault(logger)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("color", "auto",
		"colorize output: auto, always, never")
	addConfigFlags(rootCmd)

	rootCmd.Flags().String(flagOutputDir, "", "directory generated files are written to")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "do not print the list of written files")

	// Add subcommands.
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newTargetsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelp(rootCmd)

	return rootCmd
}

func runGenerate(cmd *cobra.Command, args []string, flags *rootFlags) error {
	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	// Arguments are checked before anything is loaded or fetched.
	if _, err := generate.NewPlan(args, generate.PlanOptions{}); err != nil {
		if !generate.IsUsageError(err) {
			return err
		}
		logger.Debug("invalid invocation", logging.FieldError, err)
		printUsage(out, err)
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	plan, err := generate.NewPlan(args, generate.PlanOptions{
		Dir:        cfg.OutputDir,
		BaseName:   cfg.BaseName,
		ReadmeName: cfg.ReadmeName,
	})
	if err != nil {
		return fmt.Errorf("plan outputs: %w", err)
	}
	logger.Debug("planned outputs", logging.FieldOutputs, plan.Paths())

	result, err := newGenerator(cfg, logger).Run(cmd.Context(), plan)
	if err != nil {
		return err
	}

	logger.Debug("generation complete",
		logging.FieldGroups, result.Groups,
		logging.FieldRules, result.Rules,
		logging.FieldOutputs, len(result.Written),
	)

	if !flags.quiet {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
		if _, err := io.WriteString(out, styles.FormatWritten(result)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}

// printUsage writes the plain usage message. A bad filetype gets only the
// list of valid filetypes.
func printUsage(w io.Writer, err error) {
	valid := "Valid filetypes are: " + strings.Join(render.Names(), ", ")

	if errors.Is(err, generate.ErrUnknownFormat) {
		_, _ = fmt.Fprintln(w, valid)
		return
	}

	_, _ = fmt.Fprint(w, "Usage: eslintgen [filetype [filename]]\n\n")
	_, _ = fmt.Fprintln(w, valid)
	_, _ = fmt.Fprintln(w, "Please input filename without extension - extension is automatically the selected filetype.")
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}
