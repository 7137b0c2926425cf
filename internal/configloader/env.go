package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gowikitext/pkg/config"
)

// envVarPrefix is the prefix for all wikitext environment variables.
const envVarPrefix = "WIKITEXT_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Environment variables are prefixed with WIKITEXT_
// (e.g., WIKITEXT_PARSER_TAG_NAMES).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "PARSER_TAG_NAMES"); v != "" {
		cfg.ParserTagNames = parseSliceValue(v)
	}

	if v := os.Getenv(envVarPrefix + "CASE_FOLD_PARSER_TAGS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sCASE_FOLD_PARSER_TAGS: %q (expected true/false/1/0)",
				envVarPrefix, v)
		}
		cfg.CaseFoldParserTags = b
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}

	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = i
	}

	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = parseSliceValue(v)
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice. Each
// element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns a list of all supported environment variables
// with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"WIKITEXT_PARSER_TAG_NAMES":      "Comma-separated list of opaque-content tag names",
		"WIKITEXT_CASE_FOLD_PARSER_TAGS": "Case-fold parser tag name matching: true or false",
		"WIKITEXT_FORMAT":                "Report output format: text, tree, json, diff, or summary",
		"WIKITEXT_JOBS":                  "Number of parallel workers (0 = auto)",
		"WIKITEXT_IGNORE":                "Comma-separated list of ignore glob patterns",
	}
}
