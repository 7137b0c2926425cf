package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gowikitext/internal/configloader"
	"github.com/yaklabco/gowikitext/internal/logging"
	"github.com/yaklabco/gowikitext/pkg/config"
)

const formatJSON = "json"

type tagsFlags struct {
	format string
}

func newTagsCommand() *cobra.Command {
	var cfg config.Config
	flags := &tagsFlags{}

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print the effective parser tag configuration",
		Long: `Print the effective parser_tag_names and case_fold_parser_tags
settings after merging CLI flags, environment variables, and config
files.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTags(cmd, &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runTags(cmd *cobra.Command, cfg *config.Config, flags *tagsFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	if flags.format == formatJSON {
		return outputTagsJSON(cmd.OutOrStdout(), finalCfg)
	}

	logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.InfoLevel)
	logger.Info("effective parser tags",
		logging.FieldParserTagNames, finalCfg.ParserTagNames,
		logging.FieldCaseFoldParserTags, finalCfg.CaseFoldParserTags,
	)

	return nil
}

// tagsInfo represents the effective parser tag configuration in JSON output.
type tagsInfo struct {
	ParserTagNames     []string `json:"parser_tag_names"`
	CaseFoldParserTags bool     `json:"case_fold_parser_tags"`
}

func outputTagsJSON(w io.Writer, cfg *config.Config) error {
	info := tagsInfo{
		ParserTagNames:     cfg.ParserTagNames,
		CaseFoldParserTags: cfg.CaseFoldParserTags,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}
	return nil
}
