package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gowikitext/internal/ui/pretty"
	"github.com/yaklabco/gowikitext/pkg/runner"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// TreeReporter renders an indented recursive tree of the full AST,
// inline nodes included.
type TreeReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTreeReporter creates a new tree reporter.
func NewTreeReporter(opts Options) *TreeReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TreeReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TreeReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

		for i, line := range file.Doc.Lines {
			last := i == len(file.Doc.Lines)-1
			r.writeNode(line, "", last)
		}
	}

	return errored, nil
}

// writeNode renders n and its children at the given prefix, using the
// conventional box-drawing tree glyphs: "├── " for an interior sibling,
// "└── " for the last sibling at a level.
func (r *TreeReporter) writeNode(n wikitext.Node, prefix string, last bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(r.bw, "%s%s%s\n", prefix, connector, r.describe(n))

	kids := children(n)
	for i, kid := range kids {
		r.writeNode(kid, childPrefix, i == len(kids)-1)
	}
}

// describe renders a one-line label for n: its kind plus a short,
// leaf-appropriate detail.
func (r *TreeReporter) describe(n wikitext.Node) string {
	kind := r.styles.RuleID.Render(NodeKind(n))
	switch v := n.(type) {
	case *wikitext.Heading:
		return fmt.Sprintf("%s (level %d)", kind, v.Level)
	case *wikitext.PlainText:
		return fmt.Sprintf("%s %q", kind, v.Content)
	case *wikitext.ListItem:
		return fmt.Sprintf("%s (prefix %q)", kind, v.Prefix)
	case *wikitext.FormatSwitch:
		return fmt.Sprintf("%s (bold=%v italics=%v)", kind, v.Bold, v.Italics)
	case *wikitext.ParserTag:
		return fmt.Sprintf("%s <%s>", kind, v.Name())
	case *wikitext.HtmlTag:
		return fmt.Sprintf("%s <%s>", kind, v.Name())
	case *wikitext.Comment:
		return fmt.Sprintf("%s %q", kind, v.Content)
	default:
		return kind
	}
}
