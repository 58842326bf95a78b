package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/worldclock/internal/constants"
)

func TestInitLoggerWithWriter_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verbose       bool
		quiet         bool
		expectedLevel zerolog.Level
	}{
		{"default is info level", false, false, zerolog.InfoLevel},
		{"verbose enables debug level", true, false, zerolog.DebugLevel},
		{"quiet enables warn level", false, true, zerolog.WarnLevel},
		{"verbose takes precedence over quiet", true, true, zerolog.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := InitLoggerWithWriter(tc.verbose, tc.quiet, &buf)
			assert.Equal(t, tc.expectedLevel, logger.GetLevel())
		})
	}
}

func TestInitLoggerWithWriter_WritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := InitLoggerWithWriter(false, false, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("zone", "Asia/Tokyo").Msg("board evaluated")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, `"zone":"Asia/Tokyo"`)
	assert.Contains(t, output, `"message":"board evaluated"`)
	assert.Contains(t, output, `"time":`)
}

func TestSelectOutput_NonTTY(t *testing.T) {
	// Tests run without a terminal on stderr, so the JSON writer is chosen.
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, os.Stderr, selectOutput())
}

func TestCreateLogFileWriter(t *testing.T) {
	home := isolateHome(t)

	w, err := createLogFileWriter()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, constants.LogsDir, constants.CLILogFileName), lj.Filename)
	assert.Equal(t, constants.LogMaxSizeMB, lj.MaxSize)
	assert.Equal(t, constants.LogMaxBackups, lj.MaxBackups)

	info, err := os.Stat(filepath.Join(home, constants.LogsDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitLogger_WritesLogFile(t *testing.T) {
	home := isolateHome(t)
	t.Cleanup(CloseLogFile)

	logger := InitLogger(false, true)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	require.NotNil(t, logFileWriter)

	logger.Warn().Msg("zone cache cold")
	CloseLogFile()
	assert.Nil(t, logFileWriter)

	data, err := os.ReadFile(filepath.Join(home, constants.LogsDir, constants.CLILogFileName)) //nolint:gosec // test temp file
	require.NoError(t, err)
	assert.Contains(t, string(data), "zone cache cold")
}

func TestSelectLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, false))
	assert.Equal(t, zerolog.WarnLevel, selectLevel(false, true))
	assert.Equal(t, zerolog.InfoLevel, selectLevel(false, false))
}
