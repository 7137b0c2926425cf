// Package config defines core configuration types for gowikitext.
// These types are pure data structures with no external dependencies on Viper or other config loaders.
package config

import "github.com/yaklabco/gowikitext/pkg/wikitext"

// OutputFormat specifies the output format for a parse or round-trip
// report.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTree    OutputFormat = "tree"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// IsValid reports whether f is one of the known output formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTree, FormatJSON, FormatDiff, FormatSummary:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gowikitext.
type Config struct {
	// ParserTagNames is the set of tag names whose content is stored
	// opaque rather than re-parsed as wikitext (e.g. "nowiki", "pre").
	ParserTagNames []string `mapstructure:"parser_tag_names" yaml:"parser_tag_names"`

	// CaseFoldParserTags controls whether ParserTagNames matching
	// ignores case.
	CaseFoldParserTags bool `mapstructure:"case_fold_parser_tags" yaml:"case_fold_parser_tags"`

	// Ignore contains glob patterns for files to ignore during
	// directory discovery.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the report output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers used when parsing
	// multiple files. 0 means use runtime.NumCPU().
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults, mirroring the
// wikitext package's own parser defaults.
func NewConfig() *Config {
	return &Config{
		ParserTagNames:     append([]string(nil), wikitext.DefaultParserTagNames...),
		CaseFoldParserTags: true,
		Ignore:             nil,
		Format:             FormatText,
		Jobs:               0,
	}
}

// ParserOptions converts the configuration into wikitext.Option values
// suitable for wikitext.Parse.
func (c *Config) ParserOptions() []wikitext.Option {
	return []wikitext.Option{
		wikitext.WithParserTagNames(c.ParserTagNames...),
		wikitext.WithCaseFoldParserTags(c.CaseFoldParserTags),
	}
}
