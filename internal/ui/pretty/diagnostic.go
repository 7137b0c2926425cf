package pretty

import (
	"fmt"
	"strings"
)

// FormatParseError formats a single file-level parse failure for
// terminal output: path, the error message, and (if available) the
// offending source line with a caret marker.
func (s *Styles) FormatParseError(path string, err error, showContext bool, sourceLine string, column int) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		s.FilePath.Render(path),
		s.Error.Render("error"),
		s.Message.Render(err.Error()),
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, nodeCount int) string {
	header := s.FilePath.Render(path)
	if nodeCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d nodes)", nodeCount))
	}
	return header
}
