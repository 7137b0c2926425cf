package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gowikitext/internal/ui/pretty"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

// SummaryReporter formats results as aggregated node-kind-count tables,
// one per file plus a combined total across the run.
type SummaryReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.KindCountFormatter
	bw        *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)
	return &SummaryReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewKindCountFormatter(styles, colorEnabled, 0),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("no files to parse."))
		return 0, nil
	}

	var errored int
	combined := make(map[string]int)

	for _, file := range result.Files {
		if file.Error != nil {
			errored++
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		counts := kindCounts(file.Doc)
		if len(result.Files) > 1 {
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(file.Path))
		}
		fmt.Fprint(r.bw, r.formatter.FormatCounts(counts))
		fmt.Fprintln(r.bw)

		for kind, count := range counts {
			combined[kind] += count
		}
	}

	if r.opts.ShowSummary {
		if len(result.Files) > 1 {
			fmt.Fprintln(r.bw, r.styles.Bold.Render("Combined"))
			fmt.Fprint(r.bw, r.formatter.FormatCounts(combined))
			fmt.Fprintln(r.bw)
		}
		fmt.Fprintln(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return errored, nil
}
