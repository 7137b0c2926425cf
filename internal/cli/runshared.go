package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gowikitext/internal/configloader"
	"github.com/yaklabco/gowikitext/internal/logging"
	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/reporter"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

// loadRunConfig resolves the effective configuration for a parse or
// round-trip run, merging CLI flags over environment, project, user,
// and system configuration.
func loadRunConfig(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldParserTagNames, loadResult.Config.ParserTagNames,
		logging.FieldCaseFoldParserTags, loadResult.Config.CaseFoldParserTags,
		logging.FieldJobs, loadResult.Config.Jobs,
	)

	return loadResult.Config, nil
}

// executeRun runs the parser over args in the given mode, reports the
// outcome, and returns the process exit code.
func executeRun(cmd *cobra.Command, args []string, cfg *config.Config, mode runner.Mode, compact bool) (int, error) {
	logger := logging.Default()

	finalCfg, err := loadRunConfig(cmd, cfg)
	if err != nil {
		return ExitConfigError, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return ExitIOError, fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New().Run(ctx, mode, runOpts)
	if err != nil {
		return ExitInternalError, errors.Join(errors.New("run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return ExitInvalidUsage, fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return ExitIOError, fmt.Errorf("report results: %w", err)
	}

	return ExitCodeFromResult(result), nil
}
