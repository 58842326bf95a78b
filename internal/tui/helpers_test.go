package tui

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/worldclock/internal/cadence"
	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/locale"
	"github.com/mrz1836/worldclock/internal/zone"
)

// boardInstant is 19:00 in Tokyo and 2:00 in Los Angeles on 2023-01-01.
var boardInstant = time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

func testZones() []zone.Descriptor {
	return []zone.Descriptor{
		{Title: "東京", TimeZone: "Asia/Tokyo"},
		{Title: "シンガポール", TimeZone: "Asia/Singapore"},
		{Title: "ホノルル", TimeZone: "Pacific/Honolulu"},
		{Title: "ロサンゼルス", TimeZone: "America/Los_Angeles"},
		{Title: "オークランド", TimeZone: "Pacific/Auckland"},
	}
}

func testCalculator(t *testing.T, c clock.Clock) *zone.Calculator {
	t.Helper()
	return zone.NewCalculator(zone.NewResolver(), c)
}

func testLocalizer(t *testing.T, lang string) *locale.Localizer {
	t.Helper()
	loc := locale.New(lang, zerolog.Nop())
	require.NotNil(t, loc)
	return loc
}

func testRows(t *testing.T) []zone.Row {
	t.Helper()
	agg := zone.NewAggregator(testCalculator(t, clock.NewManual(boardInstant)))
	rows, err := agg.ListReadings(boardInstant, "Asia/Tokyo", testZones())
	require.NoError(t, err)
	return rows
}

func newTestBoard(t *testing.T, c cadence.Cadence, zones []zone.Descriptor) (*BoardModel, *clock.Manual) {
	t.Helper()
	mc := clock.NewManual(boardInstant)
	m := NewBoardModel(testCalculator(t, mc), testLocalizer(t, "en"), BoardConfig{
		LocalZone: "Asia/Tokyo",
		Zones:     zones,
		Cadence:   c,
		ShowZone:  true,
	}, WithBoardClock(mc))
	return m, mc
}
