// Package cli provides the Cobra command structure for the wikitext CLI.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gowikitext/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root wikitext command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "wikitext",
		Short: "A Wikitext parser and round-trip checker",
		Long: `wikitext parses MediaWiki markup into a structured document tree and
renders it back to source.

It provides a permissive, backtracking parser that never fails outright:
malformed or unterminated constructs degrade to plain text instead of
raising an error. wikitext can print the parsed tree, emit it as JSON,
or verify that rendering the tree reproduces the original source
byte-for-byte.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newRoundtripCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
