package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/errors"
)

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	assert.Equal(t, OutputText, flags.Output)
	assert.False(t, flags.Verbose)
	assert.False(t, flags.Quiet)
	assert.Empty(t, flags.ConfigPath)
	assert.Empty(t, flags.LocalZone)
	assert.Empty(t, flags.Language)

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"output", "o", OutputText},
		{"verbose", "v", "false"},
		{"quiet", "q", "false"},
		{"config", "", ""},
		{"local", "", ""},
		{"lang", "", ""},
	}

	for _, tc := range tests {
		f := cmd.PersistentFlags().Lookup(tc.name)
		require.NotNil(t, f, tc.name)
		assert.Equal(t, tc.shorthand, f.Shorthand, tc.name)
		assert.Equal(t, tc.defValue, f.DefValue, tc.name)
	}
}

func TestAddGlobalFlags_ParsesCorrectly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected GlobalFlags
	}{
		{
			name:     "default values",
			args:     []string{},
			expected: GlobalFlags{Output: OutputText},
		},
		{
			name:     "output shorthand",
			args:     []string{"-o", "json"},
			expected: GlobalFlags{Output: OutputJSON},
		},
		{
			name:     "verbose shorthand",
			args:     []string{"-v"},
			expected: GlobalFlags{Output: OutputText, Verbose: true},
		},
		{
			name:     "quiet flag",
			args:     []string{"--quiet"},
			expected: GlobalFlags{Output: OutputText, Quiet: true},
		},
		{
			name: "board overrides",
			args: []string{"--config", "/tmp/wc.yaml", "--local", "Europe/Paris", "--lang", "ja"},
			expected: GlobalFlags{
				Output:     OutputText,
				ConfigPath: "/tmp/wc.yaml",
				LocalZone:  "Europe/Paris",
				Language:   "ja",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags := &GlobalFlags{}
			cmd := &cobra.Command{
				Use: "test",
				RunE: func(_ *cobra.Command, _ []string) error {
					return nil
				},
			}
			AddGlobalFlags(cmd, flags)

			cmd.SetArgs(tc.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.expected, *flags)
		})
	}
}

func TestAddGlobalFlags_VerboseAndQuietExclusive(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{
		Use:  "test",
		RunE: func(_ *cobra.Command, _ []string) error { return nil },
	}
	AddGlobalFlags(cmd, flags)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"-v", "-q"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestBindGlobalFlags(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	v := viper.New()
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	require.NoError(t, BindGlobalFlags(v, cmd))
	require.NoError(t, cmd.PersistentFlags().Set("output", "json"))
	require.NoError(t, cmd.PersistentFlags().Set("verbose", "true"))

	assert.Equal(t, "json", v.GetString("output"))
	assert.True(t, v.GetBool("verbose"))
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{OutputText, OutputJSON}, ValidOutputFormats())

	tests := []struct {
		format   string
		expected bool
	}{
		{OutputText, true},
		{OutputJSON, true},
		{"yaml", false},
		{"", false},
		{"JSON", false},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsValidOutputFormat(tc.format))
		})
	}
}

//nolint:err113 // Test cases intentionally use dynamic errors to simulate Cobra error messages
func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"nil error", nil, ExitSuccess},
		{"invalid output format", errors.ErrInvalidOutputFormat, ExitInvalidInput},
		{"wrapped invalid output format", fmt.Errorf("flags: %w", errors.ErrInvalidOutputFormat), ExitInvalidInput},
		{"invalid timestamp", errors.Wrapf(errors.ErrInvalidTimestamp, "%q", "noon"), ExitInvalidInput},
		{"exit code 2 wrapper", errors.NewExitCode2Error(stderrors.New("bad value")), ExitInvalidInput},
		{"JSON-reported invalid timestamp", fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, errors.ErrInvalidTimestamp), ExitInvalidInput},
		{"unknown flag", stderrors.New("unknown flag: --foo"), ExitInvalidInput},
		{"unknown shorthand", stderrors.New("unknown shorthand flag: 'x' in -x"), ExitInvalidInput},
		{"flag needs argument", stderrors.New("flag needs an argument: --at"), ExitInvalidInput},
		{"invalid argument", stderrors.New(`invalid argument "x" for "--plain"`), ExitInvalidInput},
		{"unknown command", stderrors.New(`unknown command "sho" for "worldclock"`), ExitInvalidInput},
		{"positional args", stderrors.New(`accepts 0 arg(s), received 1`), ExitInvalidInput},
		{"invalid time zone", errors.NewInvalidTimeZoneError("Mars/Base", nil), ExitError},
		{"config missing", errors.ErrConfigNotFound, ExitError},
		{"generic error", stderrors.New("something went wrong"), ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expectedCode, ExitCodeForError(tc.err))
		})
	}
}

func TestIsInvalidInputError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errMsg   string
		expected bool
	}{
		{"unknown flag: --foo", true},
		{"if any flags in the group [verbose quiet] are set none of the others can be", true},
		{`required flag "--config" not set`, true},
		{"accepts at most 1 arg(s), received 2", true},
		{"invalid time zone: \"Mars\"", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.errMsg, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, isInvalidInputError(tc.errMsg))
		})
	}
}
