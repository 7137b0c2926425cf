package config

import "bytes"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes commented-out examples for every field.
	// If false, generates a minimal template.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gowikitext configuration
# See: https://github.com/yaklabco/gowikitext

# Tag names whose content is stored raw instead of re-parsed as wikitext.
# parser_tag_names:
#   - nowiki
#   - pre
#   - math
#   - source
#   - syntaxhighlight
#   - ref

# Whether parser_tag_names matching ignores case.
# case_fold_parser_tags: true

# File patterns to ignore when parsing a directory (glob patterns).
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)

	if !opts.Full {
		return buf.Bytes()
	}

	buf.WriteString(`
# The report output format (text, tree, json, diff, or summary) is not
# read from this file; set it with --format or WIKITEXT_FORMAT.
`)

	return buf.Bytes()
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gowikitext configuration
# See: https://github.com/yaklabco/gowikitext`
}
