package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

// ErrParseIssuesFound is returned when one or more files failed to parse.
var ErrParseIssuesFound = errors.New("parse errors found")

type parseFlags struct {
	format  string
	ignore  []string
	compact bool
}

func newParseCommand() *cobra.Command {
	var cfg config.Config
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse wikitext files and report their structure",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, &cfg, flags)
		},
	}

	addParseFlags(cmd, &cfg, flags)

	return cmd
}

const parseLongDescription = `Parse Wikitext files into a document tree.

By default, parses all .wiki, .wikitext, and .mediawiki files in the
current directory and subdirectories. Specify paths to parse specific
files or directories.

Examples:
  wikitext parse                  # Parse current directory
  wikitext parse docs/            # Parse docs directory
  wikitext parse page.wiki        # Parse a single file
  wikitext parse --format tree    # Print the document tree
  wikitext parse --format json    # Output as JSON for tooling`

func runParse(cmd *cobra.Command, args []string, cfg *config.Config, flags *parseFlags) error {
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore

	exitCode, err := executeRun(cmd, args, cfg, runner.ModeParse, flags.compact)
	if err != nil {
		return err
	}
	if exitCode != ExitSuccess {
		return ErrParseIssuesFound
	}
	return nil
}

func addParseFlags(cmd *cobra.Command, cfg *config.Config, flags *parseFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, tree, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output (json format only)")
	cmd.Flags().StringSliceVar(&cfg.ParserTagNames, "parser-tags", nil,
		"tag names whose content is treated as opaque (overrides config)")
}
