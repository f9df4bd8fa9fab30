package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_VerboseWritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(&Config{LogLevel: "info", Verbose: true}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=1")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(&Config{LogLevel: "warn", Verbose: true}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := NewLogger(&Config{LogLevel: "loud", Verbose: true}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewLogger_FileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "huddle.log")
	logger, closer, err := NewLogger(&Config{LogLevel: "info", LogFile: path}, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
