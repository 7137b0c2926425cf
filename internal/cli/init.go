package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gowikitext/internal/logging"
	"github.com/yaklabco/gowikitext/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new wikitext configuration file",
		Long: `Create a new .wikitext.yml configuration file in the current directory
with sensible defaults. The file can be customized to set the parser
tag names, case-folding behavior, and ignore patterns.

Examples:
  wikitext init                      Create minimal .wikitext.yml
  wikitext init --full               Create full config with commented examples
  wikitext init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "generate full template with all options documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .wikitext.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".wikitext.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes all options with documentation")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'wikitext tags' to see the effective parser tag configuration")

	return nil
}
