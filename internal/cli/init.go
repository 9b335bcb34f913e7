package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/eslintgen/internal/logging"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/fsutil"
)

// defaultConfigFile is the project config written by init.
const defaultConfigFile = ".eslintgen.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force    bool
	full     bool
	resolved bool
	output   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new eslintgen configuration file",
		Long: `Create a new .eslintgen.yml configuration file in the current directory.
By default every setting is listed commented out with its default value.

Examples:
  eslintgen init                     Create .eslintgen.yml with commented defaults
  eslintgen init --full              Create .eslintgen.yml with every setting active
  eslintgen init --resolved          Snapshot the effective configuration (files, env, flags)
  eslintgen init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting uncommented")
	cmd.Flags().BoolVar(&flags.resolved, "resolved", false,
		"Write the effective configuration instead of the template")
	cmd.MarkFlagsMutuallyExclusive("full", "resolved")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := initContent(cmd, flags)
	if err != nil {
		return err
	}

	if err := fsutil.EnsureDir(cmd.Context(), filepath.Dir(absPath)); err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'eslintgen rules' to preview what will be generated")

	return nil
}

func initContent(cmd *cobra.Command, flags *initFlags) ([]byte, error) {
	if !flags.resolved {
		content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
		if err != nil {
			return nil, fmt.Errorf("generate template: %w", err)
		}
		return content, nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	body, err := cfg.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("serialize configuration: %w", err)
	}
	return append([]byte(config.DefaultTemplateHeader()+"\n\n"), body...), nil
}
