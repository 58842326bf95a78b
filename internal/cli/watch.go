package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/worldclock/internal/cadence"
	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/locale"
	"github.com/mrz1836/worldclock/internal/tui"
	"github.com/mrz1836/worldclock/internal/zone"
)

// watchFlags holds flags specific to the watch command.
type watchFlags struct {
	// Cadence is the refresh interval selector value; only used when set.
	Cadence string
	// Plain streams text blocks instead of running the full-screen board.
	Plain bool
	// Pick asks for the interval with a menu before starting.
	Pick bool
	// SkipInvalid drops unresolvable zones instead of failing every refresh.
	SkipInvalid bool
}

// AddWatchCommand adds the watch command to the root command.
func AddWatchCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newWatchCmd(flags))
}

func newWatchCmd(flags *GlobalFlags) *cobra.Command {
	opts := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the clock board on screen",
		Long: `Show the clock board and refresh it at the chosen interval.

Intervals: "" (stop timer), 100, 500, 1000 and 5000 milliseconds. Any
other value stops the timer.

Keys in the board:
  +/-  →/←   next / previous interval
  0-4        choose an interval directly
  s          stop or restart the timer
  r          refresh now
  c          open the interval menu
  q          quit

With --plain (or when stdout is not a terminal) one block is printed per
refresh, and each line read from stdin sets a new interval.

Examples:
  worldclock watch
  worldclock watch --cadence 5000
  worldclock watch --plain --cadence 1000 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			err := runWatch(cmd.Context(), cmd, w, cmd.InOrStdin(), flags, opts)
			return reportError(cmd, w, flags, err)
		},
	}

	cmd.Flags().StringVar(&opts.Cadence, "cadence", "", `refresh interval in ms: "", 100, 500, 1000, 5000`)
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "print plain text blocks instead of the full-screen board")
	cmd.Flags().BoolVar(&opts.Pick, "pick", false, "choose the interval from a menu before starting")
	cmd.Flags().BoolVar(&opts.SkipInvalid, "skip-invalid", false, "omit clocks whose zone cannot be resolved")

	return cmd
}

// runWatch resolves the starting cadence and runs the board in the right mode.
func runWatch(ctx context.Context, cmd *cobra.Command, w io.Writer, in io.Reader, flags *GlobalFlags, opts *watchFlags) error {
	if err := checkCanceled(ctx); err != nil {
		return err
	}

	logger := GetLogger()

	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	start := cfg.Cadence
	if cmd.Flags().Changed("cadence") {
		start = cadence.Parse(opts.Cadence)
	}

	if opts.Pick {
		picked, pickErr := tui.SelectCadence(start)
		switch {
		case pickErr == nil:
			start = picked
		case stderrors.Is(pickErr, errors.ErrMenuCanceled):
			logger.Debug().Msg("interval menu canceled, keeping current interval")
		default:
			return pickErr
		}
	}

	skipInvalid := opts.SkipInvalid || cfg.Display.SkipInvalid
	calc := newCalculator(clock.RealClock{}, logger)
	loc := newLocalizer(cfg, logger)

	if opts.Plain || flags.Output == OutputJSON || !isTerminal(w) {
		pw := newPlainWatcher(w, calc, loc, cfg, flags.Output == OutputJSON, skipInvalid, clock.RealClock{}, logger)
		return runWatchPlain(ctx, in, pw, start, logger)
	}

	model := tui.NewBoardModel(calc, loc, tui.BoardConfig{
		LocalZone:   cfg.LocalZone,
		Zones:       cfg.Zones,
		Cadence:     start,
		ShowZone:    cfg.Display.ShowZone,
		SkipInvalid: skipInvalid,
	}, tui.WithBoardLogger(logger))

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(w), tea.WithInput(in))
	if _, err := program.Run(); err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "watch board failed")
	}
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// plainWatcher renders the board as text or JSON blocks, one per refresh.
type plainWatcher struct {
	mu sync.Mutex
	w  io.Writer

	calc    *zone.Calculator
	agg     *zone.Aggregator
	loc     *locale.Localizer
	cfg     *config.Config
	json    bool
	clock   clock.Clock
	zones   []zone.Descriptor
	skipped []zone.Descriptor

	current cadence.Cadence
	updates int64
	logger  zerolog.Logger
}

func newPlainWatcher(w io.Writer, calc *zone.Calculator, loc *locale.Localizer, cfg *config.Config, asJSON, skipInvalid bool, c clock.Clock, logger zerolog.Logger) *plainWatcher {
	pw := &plainWatcher{
		w:      w,
		calc:   calc,
		agg:    zone.NewAggregator(calc),
		loc:    loc,
		cfg:    cfg,
		json:   asJSON,
		clock:  c,
		zones:  cfg.Zones,
		logger: logger,
	}
	if skipInvalid {
		pw.zones, pw.skipped = pw.agg.FilterResolvable(cfg.Zones)
	}
	return pw
}

// render evaluates the board at instant and writes one block.
func (pw *plainWatcher) render(instant time.Time) {
	rows, err := pw.agg.ListReadings(instant, pw.cfg.LocalZone, pw.zones)

	pw.mu.Lock()
	defer pw.mu.Unlock()

	if err != nil {
		tui.NewOutput(pw.w, pw.format()).Error(err)
		return
	}
	pw.updates++

	if pw.json {
		if err := tui.NewJSONOutput(pw.w).JSON(boardResult{
			Instant:   instant,
			LocalZone: pw.cfg.LocalZone,
			Rows:      rows,
			Skipped:   pw.skipped,
		}); err != nil {
			pw.logger.Warn().Err(err).Int64("updates", pw.updates).Msg("failed to write board")
		}
		return
	}

	table := tui.NewBoardTable(rows, pw.loc, tui.WithZoneColumn(pw.cfg.Display.ShowZone))
	block := table.String() + pw.statusLine(instant) + "\n\n"
	if _, err := io.WriteString(pw.w, block); err != nil {
		pw.logger.Warn().Err(err).Int64("updates", pw.updates).Msg("failed to write board")
	}
}

// statusLine renders the footer for instant. Callers hold pw.mu.
func (pw *plainWatcher) statusLine(instant time.Time) string {
	if loc, err := pw.calc.Resolver().Resolve(pw.cfg.LocalZone); err == nil {
		instant = instant.In(loc)
	}
	return pw.loc.StatusLine(pw.updates, instant.Format(constants.StatusTimeLayout), pw.current.Label())
}

// setCadence records c for the footer and echoes the change.
func (pw *plainWatcher) setCadence(c cadence.Cadence) {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	pw.current = c
	if !pw.json {
		_, _ = fmt.Fprintf(pw.w, "interval: %s\n", c.Label())
	}
}

func (pw *plainWatcher) format() string {
	if pw.json {
		return OutputJSON
	}
	return OutputText
}

// runWatchPlain renders once, then lets a cadence.Scheduler drive refreshes
// until ctx is done. Each stdin line is parsed as a new cadence.
func runWatchPlain(ctx context.Context, in io.Reader, pw *plainWatcher, start cadence.Cadence, logger zerolog.Logger, opts ...cadence.SchedulerOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]cadence.SchedulerOption{
		cadence.WithClock(pw.clock),
		cadence.WithSchedulerLogger(logger),
	}, opts...)
	sched := cadence.NewScheduler(ctx, pw.render, opts...)
	defer sched.Stop()

	pw.mu.Lock()
	pw.current = start
	pw.mu.Unlock()

	pw.render(pw.clock.Now())
	sched.Set(start)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// stdin closed; keep refreshing until canceled.
				lines = nil
				continue
			}
			next := cadence.Parse(line)
			pw.setCadence(next)
			sched.Set(next)
		}
	}
}
