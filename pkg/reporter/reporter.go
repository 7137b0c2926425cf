// Package reporter renders the results of parsing and round-tripping
// wikitext files for the CLI.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

// Reporter formats and writes a parse or round-trip run's results.
type Reporter interface {
	// Report writes formatted output for the given result. It returns
	// the number of files the reporter flags as noteworthy (mismatched
	// for round-trip formats, errored otherwise) and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatDiff:
		return NewDiffReporter(opts), nil
	case config.FormatTree:
		return NewTreeReporter(opts), nil
	case config.FormatSummary:
		return NewSummaryReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
