package reporter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gowikitext/internal/ui/pretty"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

// DiffReporter renders a round-trip check as a unified diff between a
// file's source and its re-stringified AST, in the same unified-diff
// style the teacher's table/diff output uses.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter. It returns the number of files whose
// round-trip output did not match the source.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var mismatched int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		rendered := file.Doc.String()
		if rendered == file.Source {
			continue
		}

		mismatched++
		d := generateDiff(file.Path, file.Source, rendered)
		if d != nil {
			r.writeDiff(d)
		}
	}

	if r.opts.ShowSummary {
		if mismatched == 0 {
			fmt.Fprintln(r.out, r.styles.Success.Render("all files round-trip cleanly."))
		} else {
			word := "files"
			if mismatched == 1 {
				word = "file"
			}
			fmt.Fprintln(r.out, r.styles.Failure.Render(fmt.Sprintf("%d %s failed to round-trip.", mismatched, word)))
		}
	}

	return mismatched, nil
}

// writeDiff outputs a single file's diff with formatting.
func (r *DiffReporter) writeDiff(d *diff) {
	displayPath := relativePath(d.Path)

	header := fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)
	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(header))
	fmt.Fprintln(r.out, r.styles.DiffRemove.Render("--- a/"+displayPath))
	fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+++ b/"+displayPath))

	for _, hunk := range d.Hunks {
		r.writeDiffLine(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount))
		for _, line := range hunk.Lines {
			switch line.Kind {
			case diffLineContext:
				r.writeDiffLine(" " + line.Content)
			case diffLineAdd:
				r.writeDiffLine("+" + line.Content)
			case diffLineRemove:
				r.writeDiffLine("-" + line.Content)
			}
		}
	}

	fmt.Fprintln(r.out)
}

// relativePath converts an absolute path to a relative path from the
// current directory, falling back to the basename for awkward paths.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := filepath.Abs(".")
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}

func (r *DiffReporter) writeDiffLine(line string) {
	var styled string
	switch {
	case strings.HasPrefix(line, "@@"):
		styled = r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		styled = r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		styled = r.styles.DiffRemove.Render(line)
	default:
		styled = r.styles.DiffContext.Render(line)
	}
	fmt.Fprintln(r.out, styled)
}
