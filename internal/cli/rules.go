package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/eslintgen/internal/logging"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/reporter"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	compact    bool
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules found on the rules page",
		Long: `Fetch the rules page and list every rule group and rule that would be
written to the starter files, in page order. Nothing is written to disk.

Examples:
  eslintgen rules                          Grouped text listing
  eslintgen rules --format table           Table sized to the terminal
  eslintgen rules --format json --compact  One-line JSON for scripts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", string(config.RuleFormatName),
		"rule identifier format in output: name or qualified")
	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText),
		"output format: text, table, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	ruleFormat := config.RuleFormat(flags.ruleFormat)
	if !ruleFormat.IsValid() {
		return fmt.Errorf("invalid rule format %q: must be name or qualified", flags.ruleFormat)
	}
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  ruleFormat,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	groups, err := newGenerator(cfg, logger).Groups(cmd.Context())
	if err != nil {
		return err
	}

	count, err := rep.Report(cmd.Context(), groups)
	if err != nil {
		return fmt.Errorf("report rules: %w", err)
	}
	logger.Debug("listed rules", logging.FieldGroups, len(groups), logging.FieldRules, count)

	return nil
}
