package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/config"
	"github.com/mrz1836/worldclock/internal/errors"
	"github.com/mrz1836/worldclock/internal/locale"
	"github.com/mrz1836/worldclock/internal/tui"
	"github.com/mrz1836/worldclock/internal/zone"
)

// checkCanceled returns ctx.Err() if the context is already done.
func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// loadConfig loads the effective configuration with the global flag overrides applied.
func loadConfig(ctx context.Context, flags *GlobalFlags) (*config.Config, error) {
	cfg, err := config.LoadWithOverrides(ctx, flags.ConfigPath, &config.Overrides{
		LocalZone: flags.LocalZone,
		Language:  flags.Language,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// newCalculator builds a zone calculator whose "today" comes from c.
func newCalculator(c clock.Clock, logger zerolog.Logger) *zone.Calculator {
	resolver := zone.NewResolver(zone.WithLogger(logger))
	return zone.NewCalculator(resolver, c)
}

// newLocalizer builds the label localizer for cfg.
func newLocalizer(cfg *config.Config, logger zerolog.Logger) *locale.Localizer {
	return locale.New(cfg.Language, logger)
}

// parseInstant parses an RFC 3339 --at value. An empty value means now.
func parseInstant(at string, c clock.Clock) (time.Time, error) {
	if at == "" {
		return c.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidTimestamp, "%q", at))
	}
	return t, nil
}

// reportError writes err as JSON when JSON output was requested, so scripts
// always get a parseable document. The returned error still carries err for
// the exit code.
func reportError(cmd *cobra.Command, w io.Writer, flags *GlobalFlags, err error) error {
	if err == nil || flags.Output != OutputJSON {
		return err
	}
	tui.NewJSONOutput(w).Error(err)
	cmd.SilenceErrors = true
	return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, err)
}

// boardResult is the JSON document for one evaluation of the board.
type boardResult struct {
	Instant   time.Time         `json:"instant"`
	LocalZone string            `json:"local_zone"`
	Rows      []zone.Row        `json:"rows"`
	Skipped   []zone.Descriptor `json:"skipped,omitempty"`
}
