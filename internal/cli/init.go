package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/tui"
)

// initFlags holds flags specific to the init command.
type initFlags struct {
	// Force overwrites an existing config file without asking.
	Force bool
}

// initResult is the JSON document for the init command.
type initResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// confirmFunc asks a yes/no question. Replaced in tests.
type confirmFunc func(message string, defaultYes bool) (bool, error)

// AddInitCommand adds the init command to the root command.
func AddInitCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write the default board (Tokyo, Singapore, Honolulu, Los Angeles and
Auckland, local zone Asia/Tokyo, 1 second refresh) to the config file.
--local and --lang are written into the new file.

The file goes to --config when given, otherwise ~/.worldclock/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			confirm := tui.Confirm
			if flags.Output == OutputJSON || !term.IsTerminal(int(os.Stdin.Fd())) {
				confirm = nil
			}
			return reportError(cmd, w, flags, runInit(cmd.Context(), w, flags, opts, confirm))
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing config file")

	root.AddCommand(cmd)
}

// runInit writes the default config. When the file exists and force is
// unset, confirm is asked; a nil confirm means the existing file is kept.
func runInit(ctx context.Context, w io.Writer, flags *GlobalFlags, opts *initFlags, confirm confirmFunc) error {
	if err := checkCanceled(ctx); err != nil {
		return err
	}

	path := flags.ConfigPath
	if path == "" {
		globalPath, err := config.GlobalConfigPath()
		if err != nil {
			return err
		}
		path = globalPath
	}

	cfg := config.DefaultConfig()
	if flags.LocalZone != "" {
		cfg.LocalZone = flags.LocalZone
	}
	if flags.Language != "" {
		cfg.Language = flags.Language
	}

	force := opts.Force
	err := config.WriteFile(path, cfg, force)
	if stderrors.Is(err, errors.ErrConfigExists) && confirm != nil {
		overwrite, confirmErr := confirm("Overwrite "+path+"?", false)
		if confirmErr != nil {
			return confirmErr
		}
		if !overwrite {
			return err
		}
		err = config.WriteFile(path, cfg, true)
	}
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("path", path).Msg("config written")

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(initResult{Path: path, Created: true})
	}
	out.Success("wrote " + path)
	return nil
}
