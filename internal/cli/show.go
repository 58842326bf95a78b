package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/tui"
	"github.com/mrz1836/worldclock/internal/zone"
)

// showFlags holds flags specific to the show command.
type showFlags struct {
	// At evaluates the board at an RFC 3339 instant instead of now.
	At string
	// SkipInvalid drops unresolvable zones instead of failing.
	SkipInvalid bool
}

// AddShowCommand adds the show command to the root command.
func AddShowCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newShowCmd(flags))
}

func newShowCmd(flags *GlobalFlags) *cobra.Command {
	opts := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the clock board once",
		Long: `Evaluate every configured clock against a single instant and print
the time, day label and whole-hour offset from the local zone.

With --at the board is evaluated as if that instant were now, so the
day labels are relative to the same moment.

Examples:
  worldclock show
  worldclock show --local America/New_York
  worldclock show --at 2023-01-01T10:00:00Z -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			return reportError(cmd, w, flags, runShow(cmd.Context(), w, flags, opts, clock.RealClock{}))
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "evaluate at this RFC 3339 instant instead of now")
	cmd.Flags().BoolVar(&opts.SkipInvalid, "skip-invalid", false, "omit clocks whose zone cannot be resolved")

	return cmd
}

// runShow evaluates the board once and writes it to w.
func runShow(ctx context.Context, w io.Writer, flags *GlobalFlags, opts *showFlags, c clock.Clock) error {
	if err := checkCanceled(ctx); err != nil {
		return err
	}

	logger := GetLogger()

	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	instant, err := parseInstant(opts.At, c)
	if err != nil {
		return err
	}
	if opts.At != "" {
		c = clock.Func(func() time.Time { return instant })
	}

	agg := zone.NewAggregator(newCalculator(c, logger))

	zones := cfg.Zones
	var skipped []zone.Descriptor
	if opts.SkipInvalid || cfg.Display.SkipInvalid {
		zones, skipped = agg.FilterResolvable(zones)
	}

	rows, err := agg.ListReadings(instant, cfg.LocalZone, zones)
	if err != nil {
		return err
	}

	logger.Debug().
		Time("instant", instant).
		Str("local_zone", cfg.LocalZone).
		Int("rows", len(rows)).
		Int("skipped", len(skipped)).
		Msg("board evaluated")

	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(boardResult{
			Instant:   instant,
			LocalZone: cfg.LocalZone,
			Rows:      rows,
			Skipped:   skipped,
		})
	}

	out := tui.NewTTYOutput(w)
	table := tui.NewBoardTable(rows, newLocalizer(cfg, logger), tui.WithZoneColumn(cfg.Display.ShowZone))
	if err := table.Render(w); err != nil {
		return err
	}
	for _, d := range skipped {
		out.Warning("skipped " + d.Title + " (" + d.TimeZone + "): zone not found")
	}
	return nil
}
