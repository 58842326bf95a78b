package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the rest of the test. Call t.Setenv first so the
// original value is restored afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}
