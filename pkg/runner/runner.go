package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// Mode selects what a Runner does with each discovered file.
type Mode int

const (
	// ModeParse parses each file and reports parse errors only.
	ModeParse Mode = iota

	// ModeRoundTrip parses each file and additionally checks that
	// rendering the parsed document reproduces the original source
	// byte-for-byte.
	ModeRoundTrip
)

// Runner orchestrates concurrent parsing of multiple wikitext files.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and parses them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Parses files concurrently using a bounded worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, mode Mode, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	parserOpts := opts.Config.ParserOptions()

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, mode, workCh, outCh, parserOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker reads and parses files from workCh, sending outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	mode Mode,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	parserOpts []wikitext.Option,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := parseFile(mode, path, parserOpts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// parseFile reads and parses a single file, producing its outcome.
func parseFile(mode Mode, path string, parserOpts []wikitext.Option) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	outcome.Source = string(data)

	doc, err := wikitext.Parse(outcome.Source, parserOpts...)
	if err != nil {
		outcome.Error = fmt.Errorf("parse %s: %w", path, err)
		return outcome
	}
	outcome.Doc = doc

	if mode == ModeRoundTrip {
		outcome.RoundTripChecked = true
		outcome.RoundTripMatch = doc.String() == outcome.Source
	}

	return outcome
}
