package runner

import "github.com/yaklabco/gowikitext/pkg/wikitext"

// FileOutcome captures the result of parsing a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Source is the raw file content that was parsed.
	Source string

	// Doc is the parsed document. Nil if Error is set.
	Doc *wikitext.Wikitext

	// RoundTripChecked is true when Run was called with ModeRoundTrip for
	// this run, making RoundTripMatch meaningful.
	RoundTripChecked bool

	// RoundTripMatch reports whether Doc.String() reproduced Source
	// byte-for-byte. Only meaningful when RoundTripChecked is true.
	RoundTripMatch bool

	// Error is set if the file could not be read or parsed.
	Error error
}

// LineCount returns the number of top-level lines in the parsed
// document, or zero if the file was not successfully parsed.
func (o FileOutcome) LineCount() int {
	if o.Doc == nil {
		return 0
	}
	return len(o.Doc.Lines)
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully parsed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read or
	// parsed.
	FilesErrored int

	// FilesMismatched is the number of files whose round-trip
	// rendering did not reproduce the source. Only populated when the
	// run used ModeRoundTrip.
	FilesMismatched int

	// NodesTotal is the sum of top-level line nodes across all
	// successfully parsed files.
	NodesTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered, such as
	// discovery failures for individual input paths.
	Errors []error
}

// HasErrors reports whether any file failed to parse.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasMismatches reports whether any file failed its round-trip check.
func (r *Result) HasMismatches() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesMismatched > 0
}

// newStats creates a new, zeroed Stats value.
func newStats() Stats {
	return Stats{}
}

// accumulate folds a single file's outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.NodesTotal += outcome.LineCount()

	if outcome.RoundTripChecked && !outcome.RoundTripMatch {
		r.Stats.FilesMismatched++
	}
}
