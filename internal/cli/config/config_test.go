package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rowcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTargetType, cfg.Target.Type)
	assert.Equal(t, DefaultSeverity, cfg.Severity)
	assert.True(t, cfg.Commas)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	path := writeConfigFile(t, `
target:
  type: sqlite
  path: warehouse.db
severity: warning
commas: false
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, "warehouse.db", cfg.Target.Path)
	assert.Equal(t, "warning", cfg.Severity)
	assert.False(t, cfg.Commas)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	path := writeConfigFile(t, `
target:
  type: sqlite
severity: warning
`)
	t.Setenv("ROWCHECK_SEVERITY", "abend")
	t.Setenv("ROWCHECK_TARGET_TYPE", "duckdb")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "abend", cfg.Severity)
	assert.Equal(t, "duckdb", cfg.Target.Type)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Setenv("ROWCHECK_TARGET_PATH", "env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("database", "", "")
	flags.String("db-type", "", "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--database", "flag.db", "--db-type", "sqlite", "--output", "json"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.Target.Path)
	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("database", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Empty(t, cfg.Target.Path)
}

func TestLoadConfigBadFile(t *testing.T) {
	ResetConfig()
	path := filepath.Join(t.TempDir(), "rowcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: ["), 0644))

	_, err := LoadConfig(path, nil)
	assert.Error(t, err)
}

func TestGetCurrentConfig(t *testing.T) {
	ResetConfig()
	assert.Nil(t, GetCurrentConfig())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Same(t, cfg, GetCurrentConfig())
}
