// Package main is the entry point for the wikitext CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gowikitext/internal/cli"
	"github.com/yaklabco/gowikitext/internal/logging"
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
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log the sentinel "issues found" errors - they're just a
		// signal for the exit code, already reported by the command itself.
		if !errors.Is(err, cli.ErrParseIssuesFound) && !errors.Is(err, cli.ErrRoundTripMismatch) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return 0
}
