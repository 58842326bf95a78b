package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/tui"
)

// zoneStatus describes one configured clock and whether its zone resolves.
type zoneStatus struct {
	Title     string `json:"title"`
	TimeZone  string `json:"time_zone"`
	Valid     bool   `json:"valid"`
	UTCOffset string `json:"utc_offset,omitempty"`
	Error     string `json:"error,omitempty"`
}

// zonesResult is the JSON document for the zones command.
type zonesResult struct {
	LocalZone zoneStatus   `json:"local_zone"`
	Zones     []zoneStatus `json:"zones"`
}

// AddZonesCommand adds the zones command to the root command.
func AddZonesCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List configured clocks and check their time zones",
		Long: `List the local zone and every configured clock, with the current UTC
offset of each zone. Zones that cannot be resolved are marked invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			return reportError(cmd, w, flags, runZones(cmd.Context(), w, flags, clock.RealClock{}))
		},
	}
	root.AddCommand(cmd)
}

func runZones(ctx context.Context, w io.Writer, flags *GlobalFlags, c clock.Clock) error {
	if err := checkCanceled(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	resolver := newCalculator(c, GetLogger()).Resolver()
	now := c.Now()

	check := func(title, id string) zoneStatus {
		st := zoneStatus{Title: title, TimeZone: id}
		loc, resolveErr := resolver.Resolve(id)
		if resolveErr != nil {
			st.Error = resolveErr.Error()
			return st
		}
		st.Valid = true
		st.UTCOffset = now.In(loc).Format("-07:00")
		return st
	}

	result := zonesResult{
		LocalZone: check("local", cfg.LocalZone),
		Zones:     make([]zoneStatus, 0, len(cfg.Zones)),
	}
	for _, d := range cfg.Zones {
		result.Zones = append(result.Zones, check(d.Title, d.TimeZone))
	}

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(result)
	}

	rows := make([][]string, 0, len(result.Zones)+1)
	for _, st := range append([]zoneStatus{result.LocalZone}, result.Zones...) {
		rows = append(rows, []string{st.Title, st.TimeZone, st.UTCOffset, statusText(st)})
	}
	out.Table([]string{"TITLE", "ZONE", "UTC", "STATUS"}, rows)
	return nil
}

func statusText(st zoneStatus) string {
	if st.Valid {
		return "ok"
	}
	return "invalid"
}
