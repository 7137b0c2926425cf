package cli

import "github.com/yaklabco/gowikitext/pkg/runner"

// Exit codes for the wikitext CLI.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitParseErrors indicates one or more files failed to parse.
	ExitParseErrors = 1

	// ExitRoundTripMismatch indicates parse succeeded but one or more
	// files failed to round-trip byte-for-byte.
	ExitRoundTripMismatch = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a run's result.
// Parse errors take precedence over round-trip mismatches: a file that
// failed to parse was never checked for round-trip fidelity.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitParseErrors
	}

	if result.Stats.FilesMismatched > 0 {
		return ExitRoundTripMismatch
	}

	return ExitSuccess
}
