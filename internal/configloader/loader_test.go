package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/internal/configloader"
	"github.com/yaklabco/gowikitext/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:          dir,
		IgnoreSystemConfig:  true,
		IgnoreUserConfig:    true,
		IgnoreProjectConfig: true,
		IgnoreEnv:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig().ParserTagNames, result.Config.ParserTagNames)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".wikitext.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parser_tag_names:\n  - custom\n"), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"custom"}, result.Config.ParserTagNames)
	assert.Equal(t, []string{cfgPath}, result.LoadedFrom)
}

func TestLoad_CLIConfigTakesHighestPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".wikitext.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parser_tag_names:\n  - fromfile\n"), 0644))

	cli := config.NewConfig()
	cli.ParserTagNames = []string{"fromcli"}

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		CLIConfig:          cli,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fromcli"}, result.Config.ParserTagNames)
}

func TestLoad_InvalidIgnorePatternFromFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".wikitext.yml")
	// format is a CLI-only field (yaml:"-") so it cannot be set from a
	// file; exercise validation instead through a discovered project
	// config whose ignore list holds a malformed glob.
	require.NoError(t, os.WriteFile(cfgPath, []byte("ignore:\n  - \"[\"\n"), 0644))

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.Error(t, err)
}
