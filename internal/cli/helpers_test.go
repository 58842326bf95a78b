package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/clock"
)

// boardInstant is 2023-01-01 19:00 in Tokyo.
var boardInstant = time.Date(2023, time.January, 1, 10, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

const testConfigYAML = `local_zone: Asia/Tokyo
cadence: 1000
language: en
display:
  show_zone: true
zones:
  - title: Tokyo
    time_zone: Asia/Tokyo
  - title: Singapore
    time_zone: Asia/Singapore
  - title: Honolulu
    time_zone: Pacific/Honolulu
  - title: Los Angeles
    time_zone: America/Los_Angeles
  - title: Auckland
    time_zone: Pacific/Auckland
`

const brokenZoneConfigYAML = `local_zone: Asia/Tokyo
zones:
  - title: Tokyo
    time_zone: Asia/Tokyo
  - title: Olympus
    time_zone: Mars/Olympus_Mons
`

// writeTestConfig writes content to a config file in a temp dir and returns its path.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// testFlags returns text-mode global flags pointing at path.
func testFlags(path string) *GlobalFlags {
	return &GlobalFlags{Output: OutputText, ConfigPath: path}
}

// isolateHome points WORLDCLOCK_HOME at a temp dir so log files and the
// global config never touch the real home directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("WORLDCLOCK_HOME", home)
	return home
}

// fixedClock returns a clock stopped at boardInstant.
func fixedClock() *clock.Manual {
	return clock.NewManual(boardInstant)
}

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
