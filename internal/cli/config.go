package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/tui"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect worldclock configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the configuration worldclock would use, after merging the
config file, WORLDCLOCK_* environment variables and the --local and --lang
flags over the built-in defaults.

Printed as YAML, or as JSON with --output json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			return reportError(cmd, w, flags, runConfigShow(cmd.Context(), w, flags))
		},
	})

	root.AddCommand(cmd)
}

func runConfigShow(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	if err := checkCanceled(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(cfg)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
