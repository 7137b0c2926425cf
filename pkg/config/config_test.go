package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, wikitext.DefaultParserTagNames, cfg.ParserTagNames)
	assert.True(t, cfg.CaseFoldParserTags)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, 0, cfg.Jobs)
}

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		valid  bool
	}{
		{config.FormatText, true},
		{config.FormatTree, true},
		{config.FormatJSON, true},
		{config.FormatDiff, true},
		{config.FormatSummary, true},
		{config.OutputFormat("bogus"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.format.IsValid(), "format=%q", tt.format)
	}
}

func TestParseOutputFormat(t *testing.T) {
	f, ok := config.ParseOutputFormat("tree")
	require.True(t, ok)
	assert.Equal(t, config.FormatTree, f)

	_, ok = config.ParseOutputFormat("nope")
	assert.False(t, ok)
}

func TestConfig_Clone(t *testing.T) {
	var c *config.Config
	assert.Nil(t, c.Clone())

	cfg := config.NewConfig()
	cfg.Ignore = []string{"vendor/**"}
	clone := cfg.Clone()
	require.NotNil(t, clone)
	assert.NotSame(t, cfg, clone)
	assert.Equal(t, cfg.ParserTagNames, clone.ParserTagNames)
	assert.Equal(t, cfg.Ignore, clone.Ignore)

	clone.Ignore[0] = "changed"
	assert.NotEqual(t, cfg.Ignore[0], clone.Ignore[0])
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := config.NewConfig()
	cfg.ParserTagNames = []string{"nowiki", "custom"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.ParserTagNames, parsed.ParserTagNames)
	assert.Equal(t, cfg.CaseFoldParserTags, parsed.CaseFoldParserTags)
}

func TestConfig_ParserOptions(t *testing.T) {
	cfg := config.NewConfig()
	cfg.ParserTagNames = []string{"code"}
	cfg.CaseFoldParserTags = false

	doc, err := wikitext.Parse("<code>[[x]]</code>", cfg.ParserOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "<code>[[x]]</code>", doc.String())
}
