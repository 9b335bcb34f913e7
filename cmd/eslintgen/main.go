// Package main is the entry point for the eslintgen CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/yaklabco/eslintgen/internal/cli"
	"github.com/yaklabco/eslintgen/internal/ui/pretty"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		color, _ := rootCmd.PersistentFlags().GetString("color")
		styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stderr))
		_, _ = os.Stderr.WriteString(styles.FormatFailure(err.Error()))
	}

	return cli.ExitCode(err)
}
