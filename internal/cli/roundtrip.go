package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

// ErrRoundTripMismatch is returned when one or more files failed to
// round-trip byte-for-byte.
var ErrRoundTripMismatch = errors.New("round-trip mismatches found")

type roundtripFlags struct {
	format  string
	ignore  []string
	compact bool
}

func newRoundtripCommand() *cobra.Command {
	var cfg config.Config
	flags := &roundtripFlags{}

	cmd := &cobra.Command{
		Use:   "roundtrip [paths...]",
		Short: "Verify that parsing and rendering reproduces the original source",
		Long:  roundtripLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(cmd, args, &cfg, flags)
		},
	}

	addRoundtripFlags(cmd, &cfg, flags)

	return cmd
}

const roundtripLongDescription = `Parse Wikitext files and verify that rendering the parsed tree
reproduces the original source byte-for-byte.

Exits non-zero if any file fails to parse or fails to round-trip.

Examples:
  wikitext roundtrip               # Check current directory, print diffs
  wikitext roundtrip page.wiki      # Check a single file
  wikitext roundtrip --format summary  # Print node kind counts and a pass/fail line`

func runRoundtrip(cmd *cobra.Command, args []string, cfg *config.Config, flags *roundtripFlags) error {
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore

	exitCode, err := executeRun(cmd, args, cfg, runner.ModeRoundTrip, flags.compact)
	if err != nil {
		return err
	}

	switch exitCode {
	case ExitParseErrors:
		return ErrParseIssuesFound
	case ExitRoundTripMismatch:
		return ErrRoundTripMismatch
	default:
		return nil
	}
}

func addRoundtripFlags(cmd *cobra.Command, cfg *config.Config, flags *roundtripFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "diff", "output format: text, tree, json, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output (json format only)")
	cmd.Flags().StringSliceVar(&cfg.ParserTagNames, "parser-tags", nil,
		"tag names whose content is treated as opaque (overrides config)")
}
