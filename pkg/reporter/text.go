package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gowikitext/internal/ui/pretty"
	"github.com/yaklabco/gowikitext/pkg/runner"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// TextReporter renders each file's path followed by one line per
// top-level LineNode, annotated with its kind and, for headings, level.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	for _, file := range result.Files {
		fmt.Fprintln(r.bw, r.styles.FilePath.Render(file.Path))

		if file.Error != nil {
			errored++
			fmt.Fprintf(r.bw, "  %s\n", r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}

		for _, line := range file.Doc.Lines {
			r.writeLine(line)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintf(r.bw, "\n%d files parsed, %d lines, %d errors\n",
			result.Stats.FilesProcessed, result.Stats.NodesTotal, result.Stats.FilesErrored)
	}

	return errored, nil
}

func (r *TextReporter) writeLine(line wikitext.LineNode) {
	kind := NodeKind(line)
	if heading, ok := line.(*wikitext.Heading); ok {
		fmt.Fprintf(r.bw, "  %s (level %d): %s\n",
			r.styles.RuleID.Render(kind), heading.Level, line.String())
		return
	}
	fmt.Fprintf(r.bw, "  %s: %s\n", r.styles.RuleID.Render(kind), line.String())
}
