package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gowikitext/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 files parsed, 1 file mismatched, 2 files errored".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesErrored == 0 && stats.FilesMismatched == 0 {
		return s.Success.Render(fmt.Sprintf("%d files parsed cleanly", stats.FilesProcessed)) + "\n"
	}

	var parts []string

	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("%d %s parsed", stats.FilesProcessed, fileWord))

	if stats.FilesMismatched > 0 {
		mismatchWord := wordFiles
		if stats.FilesMismatched == 1 {
			mismatchWord = wordFile
		}
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s mismatched", stats.FilesMismatched, mismatchWord)))
	}

	if stats.FilesErrored > 0 {
		erroredWord := wordFiles
		if stats.FilesErrored == 1 {
			erroredWord = wordFile
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s errored", stats.FilesErrored, erroredWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files parsed:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesMismatched > 0 {
		builder.WriteString("  Round-trip failed: " +
			s.Warning.Render(strconv.Itoa(stats.FilesMismatched)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Error.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("  Nodes parsed:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.NodesTotal)) + "\n")

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Parse failed with errors"))
	case stats.FilesMismatched > 0:
		builder.WriteString(s.Warning.Render("Parse completed with round-trip mismatches"))
	default:
		builder.WriteString(s.Success.Render("Parse passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
