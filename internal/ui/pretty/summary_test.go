package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gowikitext/internal/ui/pretty"
	"github.com/yaklabco/gowikitext/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 10,
		FilesProcessed:  10,
		FilesMismatched: 3,
		NodesTotal:      42,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files discovered:")
	assert.Contains(t, result, "Files parsed:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Round-trip failed:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Nodes parsed:")
	assert.Contains(t, result, "42")
}

func TestFormatSummary_NoMismatches(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 5,
		FilesProcessed:  5,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Parse passed")
	assert.NotContains(t, result, "Round-trip failed:")
}

func TestFormatSummary_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 10,
		FilesProcessed:  8,
		FilesErrored:    2,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Parse failed with errors")
	assert.Contains(t, result, "Files errored:")
}

func TestFormatSummary_MismatchOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 10,
		FilesProcessed:  10,
		FilesMismatched: 4,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Parse completed with round-trip mismatches")
}

func TestFormatSummaryOneLine_CleanRun(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 5,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "5 files parsed cleanly")
}

func TestFormatSummaryOneLine_WithMismatchesAndErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:  10,
		FilesMismatched: 3,
		FilesErrored:    2,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "10 files parsed")
	assert.Contains(t, result, "3 files mismatched")
	assert.Contains(t, result, "2 files errored")
}

func TestFormatSummaryOneLine_SingleFileSingular(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:  1,
		FilesMismatched: 1,
		FilesErrored:    1,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 file parsed")
	assert.Contains(t, result, "1 file mismatched")
	assert.Contains(t, result, "1 file errored")
}
