package tui

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/worldclock/internal/locale"
	"github.com/mrz1836/worldclock/internal/zone"
)

// columnGap separates table columns.
const columnGap = "  "

// BoardTable renders a board of clock rows as an aligned table.
type BoardTable struct {
	rows     []zone.Row
	loc      *locale.Localizer
	styles   *TableStyles
	showZone bool
}

// BoardTableOption configures a BoardTable.
type BoardTableOption func(*BoardTable)

// WithZoneColumn shows or hides the zone id column.
func WithZoneColumn(show bool) BoardTableOption {
	return func(t *BoardTable) {
		t.showZone = show
	}
}

// NewBoardTable creates a table for rows, labelled through loc.
func NewBoardTable(rows []zone.Row, loc *locale.Localizer, opts ...BoardTableOption) *BoardTable {
	t := &BoardTable{
		rows:     rows,
		loc:      loc,
		styles:   NewTableStyles(),
		showZone: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Headers returns the localized column titles.
func (t *BoardTable) Headers() []string {
	headers := []string{t.loc.Message(locale.MsgColumnTitle)}
	if t.showZone {
		headers = append(headers, t.loc.Message(locale.MsgColumnZone))
	}
	return append(headers,
		t.loc.Message(locale.MsgColumnTime),
		t.loc.Message(locale.MsgColumnDay),
		t.loc.Message(locale.MsgColumnOffset),
	)
}

// Cells returns the unstyled cell text for every row.
func (t *BoardTable) Cells() [][]string {
	cells := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		line := []string{r.Title}
		if t.showZone {
			line = append(line, r.TimeZone)
		}
		line = append(line,
			r.Reading.FormattedTime,
			t.loc.DayLabel(r.Reading.Day),
			t.loc.Hours(r.Reading.HourOffset),
		)
		cells = append(cells, line)
	}
	return cells
}

// Render writes the styled table to w.
func (t *BoardTable) Render(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String renders the styled table. The time column is right-aligned so
// "9:05" and "19:05" line up on the colon.
func (t *BoardTable) String() string {
	headers := t.Headers()
	cells := t.Cells()
	widths := columnWidths(headers, cells)
	timeCol := len(headers) - 3

	var b strings.Builder

	parts := make([]string, 0, len(headers))
	for i, h := range headers {
		parts = append(parts, t.styles.Header.Render(padCell(h, widths[i])))
	}
	b.WriteString(strings.TrimRight(strings.Join(parts, columnGap), " "))
	b.WriteString("\n")

	for ri, line := range cells {
		parts = parts[:0]
		for i, cell := range line {
			switch i {
			case timeCol:
				parts = append(parts, t.styles.Time.Render(padCellLeft(cell, widths[i])))
			case timeCol + 1:
				parts = append(parts, t.styles.DayStyle(t.rows[ri].Reading.Day).Render(padCell(cell, widths[i])))
			default:
				parts = append(parts, t.styles.Cell.Render(padCell(cell, widths[i])))
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, columnGap), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// padCell left-aligns s within width terminal cells.
func padCell(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// padCellLeft right-aligns s within width terminal cells.
func padCellLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
