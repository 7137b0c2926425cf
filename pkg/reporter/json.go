package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gowikitext/pkg/runner"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// JSONOutput is the top-level JSON structure for a parse run.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's parse result.
type JSONFileResult struct {
	Path  string     `json:"path"`
	Lines []JSONNode `json:"lines,omitempty"`
	Error string     `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics for a run.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesErrored    int `json:"filesErrored"`
	NodesTotal      int `json:"nodesTotal"`
}

// JSONNode is a shadow type for a wikitext AST node. The AST types
// themselves carry no json tags: serialization is a reporter concern,
// not the parser's.
type JSONNode struct {
	Kind     string     `json:"kind"`
	Text     string     `json:"text"`
	Level    int        `json:"level,omitempty"`
	Prefix   string     `json:"prefix,omitempty"`
	Bold     bool       `json:"bold,omitempty"`
	Italics  bool       `json:"italics,omitempty"`
	Children []JSONNode `json:"children,omitempty"`
}

// toJSONNode converts a wikitext.Node to its JSON shadow, recursing
// into children.
func toJSONNode(n wikitext.Node) JSONNode {
	jn := JSONNode{
		Kind: NodeKind(n),
		Text: n.String(),
	}

	switch v := n.(type) {
	case *wikitext.Heading:
		jn.Level = v.Level
	case *wikitext.ListItem:
		jn.Prefix = v.Prefix
	case *wikitext.FormatSwitch:
		jn.Bold = v.Bold
		jn.Italics = v.Italics
	}

	for _, child := range children(n) {
		jn.Children = append(jn.Children, toJSONNode(child))
	}

	return jn
}

// JSONReporter formats parse results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesErrored, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesErrored:    result.Stats.FilesErrored,
		NodesTotal:      result.Stats.NodesTotal,
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{Path: file.Path}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		} else {
			fileResult.Lines = make([]JSONNode, 0, len(file.Doc.Lines))
			for _, line := range file.Doc.Lines {
				fileResult.Lines = append(fileResult.Lines, toJSONNode(line))
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
