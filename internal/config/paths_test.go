package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORLDCLOCK_HOME", dir)

	home, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, dir, home)
}

func TestHomeDir_DefaultsUnderUserHome(t *testing.T) {
	userHome := t.TempDir()
	t.Setenv("WORLDCLOCK_HOME", "")
	t.Setenv("HOME", userHome)

	home, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, ".worldclock"), home)
}

func TestGlobalConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORLDCLOCK_HOME", dir)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestLogFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORLDCLOCK_HOME", dir)

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs", "worldclock.log"), path)
}
