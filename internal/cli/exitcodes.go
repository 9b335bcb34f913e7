package cli

import (
	"context"
	"errors"
)

// Exit codes for eslintgen. An invalid invocation prints usage and exits
// with ExitSuccess.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a fetch, extraction, configuration or write failure.
	ExitFailure = 1

	// ExitInterrupted indicates the run was cancelled (e.g. Ctrl-C).
	ExitInterrupted = 130
)

// ExitCode maps the error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
