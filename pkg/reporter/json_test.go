package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/reporter"
)

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := parseIntoResult(t, "== Title ==\n'''bold''' text\n")

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 1)
	assert.Equal(t, "test.wiki", output.Files[0].Path)
	require.Len(t, output.Files[0].Lines, 2)
	assert.Equal(t, "Heading", output.Files[0].Lines[0].Kind)
	assert.Equal(t, 2, output.Files[0].Lines[0].Level)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Compact: true,
	})

	result := parseIntoResult(t, "plain text\n")

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestJSONReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := resultWithFileError()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	require.Len(t, output.Files, 1)
	assert.NotEmpty(t, output.Files[0].Error)
}
