package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolatedHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HUDDLE_DB", "")
	t.Setenv("HUDDLE_LOG_FILE", "")
	t.Setenv("HUDDLE_LOG_LEVEL", "")
	t.Setenv("HUDDLE_VERBOSE", "")
	os.Unsetenv("HUDDLE_DB")
	os.Unsetenv("HUDDLE_LOG_FILE")
	os.Unsetenv("HUDDLE_LOG_LEVEL")
	os.Unsetenv("HUDDLE_VERBOSE")
	return home
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("huddle", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	home := isolatedHome(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".huddle", "nfl_data.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".huddle", "huddle.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	isolatedHome(t)
	t.Setenv("HUDDLE_DB", "/tmp/other.db")
	t.Setenv("HUDDLE_LOG_LEVEL", "debug")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	isolatedHome(t)
	t.Setenv("HUDDLE_DB", "/tmp/env.db")

	cfg, err := Load(newFlags(t, "--db", "/tmp/flag.db", "-v"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.db", cfg.DBPath)
	assert.True(t, cfg.Verbose)
}

func TestLoad_ConfigFileInHome(t *testing.T) {
	home := isolatedHome(t)
	dir := filepath.Join(home, ".huddle")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db: ~/data/nfl.db\nlog:\n  level: warn\n"), 0o644))

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "nfl.db"), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolatedHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  file: /tmp/custom.log\n"), 0o644))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", cfg.LogFile)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	isolatedHome(t)

	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorContains(t, err, "reading config")
}
