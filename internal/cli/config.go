package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/eslintgen/internal/configloader"
	"github.com/yaklabco/eslintgen/internal/logging"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/fetch"
	"github.com/yaklabco/eslintgen/pkg/generate"
	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// Flag names shared between commands.
const (
	flagConfig    = "config"
	flagSource    = "source"
	flagTimeout   = "timeout"
	flagOutputDir = "output-dir"
)

func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagConfig, "", "path to config file")
	cmd.PersistentFlags().String(flagSource, "",
		"rules page to scrape: URL, file:// URL or local path (default "+config.DefaultSource+")")
	cmd.PersistentFlags().Duration(flagTimeout, 0, "fetch timeout, e.g. 30s (0 = no timeout)")
}

// cliConfig collects the config overrides given as flags. Only flags the
// user actually set are copied.
func cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	flags := cmd.Flags()

	if flags.Changed(flagSource) {
		source, err := flags.GetString(flagSource)
		if err != nil {
			return nil, fmt.Errorf("get %s flag: %w", flagSource, err)
		}
		cfg.Source = source
	}
	if flags.Changed(flagTimeout) {
		timeout, err := flags.GetDuration(flagTimeout)
		if err != nil {
			return nil, fmt.Errorf("get %s flag: %w", flagTimeout, err)
		}
		cfg.Timeout = timeout
	}
	if flags.Changed(flagOutputDir) {
		dir, err := flags.GetString(flagOutputDir)
		if err != nil {
			return nil, fmt.Errorf("get %s flag: %w", flagOutputDir, err)
		}
		cfg.OutputDir = dir
	}

	return cfg, nil
}

// loadConfig resolves the effective configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	logger := logging.FromContext(cmd.Context())

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	override, err := cliConfig(cmd)
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    override,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, path := range result.LoadedFrom {
		logger.Debug("loaded config", logging.FieldConfig, path)
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	logger.Debug("resolved configuration",
		logging.FieldSource, result.Config.Source,
		logging.FieldDir, result.Config.OutputDir,
		logging.FieldTimeout, result.Config.Timeout,
	)

	return result.Config, nil
}

func newGenerator(cfg *config.Config, logger *log.Logger) *generate.Generator {
	return &generate.Generator{
		Fetcher: fetch.New(fetch.Options{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
		}),
		Source: cfg.Source,
		Extract: ruledoc.Options{
			HeadingTag: cfg.HeadingTag,
			Exclude:    cfg.Exclude,
		},
		Logger: logger,
	}
}
