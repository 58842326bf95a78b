package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/cadence"
	wcerrors "github.com/mrz1836/worldclock/internal/errors"
)

// writeConfig writes a YAML config into dir and returns its path.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolateHome points WORLDCLOCK_HOME at an empty temp dir so a developer's
// real config never leaks into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WORLDCLOCK_HOME", dir)
	return dir
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", cfg.LocalZone)
	assert.Equal(t, DefaultZones(), cfg.Zones)
	assert.Equal(t, cadence.Every1s, cfg.Cadence)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.Display.ShowZone)
}

func TestLoad_GlobalConfigFile(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, home, `
local_zone: Europe/London
cadence: "500"
language: ja
zones:
  - title: London
    time_zone: Europe/London
  - title: Tokyo
    time_zone: Asia/Tokyo
display:
  skip_invalid: true
`)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Europe/London", cfg.LocalZone)
	assert.Equal(t, cadence.Every500ms, cfg.Cadence)
	assert.Equal(t, "ja", cfg.Language)
	require.Len(t, cfg.Zones, 2)
	assert.Equal(t, "London", cfg.Zones[0].Title)
	assert.Equal(t, "Asia/Tokyo", cfg.Zones[1].TimeZone)
	assert.True(t, cfg.Display.SkipInvalid)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, home, "local_zone: Europe/London\n")
	t.Setenv("WORLDCLOCK_LOCAL_ZONE", "America/New_York")
	t.Setenv("WORLDCLOCK_CADENCE", "5000")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", cfg.LocalZone)
	assert.Equal(t, cadence.Every5s, cfg.Cadence)
}

func TestLoad_CadenceDecoding(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want cadence.Cadence
	}{
		{name: "quoted millis", yaml: `cadence: "100"`, want: cadence.Every100ms},
		{name: "bare integer", yaml: `cadence: 5000`, want: cadence.Every5s},
		{name: "duration string", yaml: `cadence: 1s`, want: cadence.Every1s},
		{name: "empty stops timer", yaml: `cadence: ""`, want: cadence.Disabled},
		{name: "outside selector stops timer", yaml: `cadence: 250`, want: cadence.Disabled},
		{name: "garbage stops timer", yaml: `cadence: fast`, want: cadence.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			path := writeConfig(t, t.TempDir(), tt.yaml+"\n")

			cfg, err := LoadFromPath(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Cadence)
		})
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	isolateHome(t)

	_, err := LoadFromPath(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	require.ErrorIs(t, err, wcerrors.ErrConfigNotFound)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, t.TempDir(), "zones: [unterminated\n")

	_, err := LoadFromPath(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadFromPath_InvalidZonesFailValidation(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, t.TempDir(), `
zones:
  - title: ""
    time_zone: Asia/Tokyo
`)

	_, err := LoadFromPath(context.Background(), path)

	require.Error(t, err)
	require.ErrorIs(t, err, wcerrors.ErrConfigInvalid)
}

func TestLoadWithOverrides(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, t.TempDir(), "local_zone: Europe/London\nlanguage: en\n")
	stopped := cadence.Disabled

	cfg, err := LoadWithOverrides(context.Background(), path, &Overrides{
		LocalZone: "Asia/Singapore",
		Language:  "ja",
		Cadence:   &stopped,
	})
	require.NoError(t, err)

	assert.Equal(t, "Asia/Singapore", cfg.LocalZone)
	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, cadence.Disabled, cfg.Cadence)
}

func TestLoadWithOverrides_EmptyOverridesKeepFile(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, home, "local_zone: Europe/London\n")

	cfg, err := LoadWithOverrides(context.Background(), "", &Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "Europe/London", cfg.LocalZone)
	assert.Equal(t, cadence.Every1s, cfg.Cadence)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Cadence = cadence.Every5s
	cfg.Language = "ja"

	require.NoError(t, WriteFile(path, cfg, false))

	loaded, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteFile_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "language: en\n")

	err := WriteFile(path, DefaultConfig(), false)
	require.ErrorIs(t, err, wcerrors.ErrConfigExists)

	require.NoError(t, WriteFile(path, DefaultConfig(), true))
}

func TestWriteFile_NilConfig(t *testing.T) {
	t.Parallel()

	err := WriteFile(filepath.Join(t.TempDir(), "config.yaml"), nil, true)
	require.ErrorIs(t, err, wcerrors.ErrConfigNil)
}
