package reporter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/reporter"
)

func TestTreeReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTreeReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "no files to parse")
}

func TestTreeReporter_NestedInlines(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTreeReporter(reporter.Options{Writer: &buf, Color: "never"})

	result := parseIntoResult(t, "[[Target|'''bold''' text]]\n")

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	output := buf.String()
	assert.Contains(t, output, "test.wiki")
	assert.Contains(t, output, "WikiLink")
	assert.Contains(t, output, "FormatSwitch")
	assert.Contains(t, output, "├──")
	assert.Contains(t, output, "└──")
}

func TestTreeReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTreeReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), resultWithFileError())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, buf.String(), "broken.wiki")
}
