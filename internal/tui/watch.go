package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mrz1836/worldclock/internal/cadence"
	"github.com/mrz1836/worldclock/internal/clock"
	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/locale"
	"github.com/mrz1836/worldclock/internal/zone"
)

// BoardConfig holds configuration for the watch board.
type BoardConfig struct {
	// LocalZone is the reference zone for offsets and day labels.
	LocalZone string
	// Zones are the clocks, in display order.
	Zones []zone.Descriptor
	// Cadence is the initial refresh interval.
	Cadence cadence.Cadence
	// ShowZone adds the zone id column.
	ShowZone bool
	// SkipInvalid drops unresolvable zones instead of failing every refresh.
	SkipInvalid bool
}

// BoardModel is the Bubble Tea model for watch mode.
// It implements tea.Model interface (Init, Update, View).
type BoardModel struct {
	calc   *zone.Calculator
	agg    *zone.Aggregator
	loc    *locale.Localizer
	clock  clock.Clock
	logger zerolog.Logger
	cfg    BoardConfig

	zones   []zone.Descriptor
	skipped []zone.Descriptor

	rows       []zone.Row
	err        error
	updates    int64
	lastUpdate time.Time

	current cadence.Cadence
	// resume is the cadence restored when the timer is started again.
	resume cadence.Cadence
	// generation invalidates ticks scheduled under an earlier cadence.
	generation int

	picker   *cadencePicker
	keys     boardKeyMap
	help     help.Model
	width    int
	quitting bool
}

// TickMsg signals time for a refresh. Generation ties it to the cadence
// that scheduled it.
type TickMsg struct {
	Time       time.Time
	Generation int
}

// BoardOption configures a BoardModel.
type BoardOption func(*BoardModel)

// WithBoardClock sets the clock used for manual refreshes and the first evaluation.
func WithBoardClock(c clock.Clock) BoardOption {
	return func(m *BoardModel) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithBoardLogger sets the logger for cadence changes and refresh failures.
func WithBoardLogger(logger zerolog.Logger) BoardOption {
	return func(m *BoardModel) {
		m.logger = logger
	}
}

// NewBoardModel creates a board that evaluates cfg.Zones through calc.
func NewBoardModel(calc *zone.Calculator, loc *locale.Localizer, cfg BoardConfig, opts ...BoardOption) *BoardModel {
	m := &BoardModel{
		calc:    calc,
		agg:     zone.NewAggregator(calc),
		loc:     loc,
		clock:   clock.RealClock{},
		logger:  zerolog.Nop(),
		cfg:     cfg,
		zones:   cfg.Zones,
		current: cfg.Cadence,
		resume:  cfg.Cadence,
		keys:    newBoardKeyMap(),
		help:    help.New(),
		width:   DefaultTerminalWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.resume.Enabled() {
		m.resume = cadence.FromDuration(constants.DefaultCadence)
	}
	if cfg.SkipInvalid {
		m.zones, m.skipped = m.agg.FilterResolvable(cfg.Zones)
	}
	return m
}

// Init performs the first evaluation and schedules the next tick.
func (m *BoardModel) Init() tea.Cmd {
	m.refresh(m.clock.Now())
	return m.tick()
}

// Update handles messages and returns the updated model and any commands.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.refresh(msg.Time)
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Faster):
		return m, m.SetCadence(m.current.Next())
	case key.Matches(msg, m.keys.Slower):
		return m, m.SetCadence(m.current.Prev())
	case key.Matches(msg, m.keys.Select):
		idx := int(msg.String()[0] - '0')
		return m, m.SetCadence(cadence.At(idx))
	case key.Matches(msg, m.keys.Toggle):
		if m.current.Enabled() {
			return m, m.SetCadence(cadence.Disabled)
		}
		return m, m.SetCadence(m.resume)
	case key.Matches(msg, m.keys.Refresh):
		m.refresh(m.clock.Now())
		return m, nil
	case key.Matches(msg, m.keys.Pick):
		m.picker = newCadencePicker(m.current)
		return m, m.picker.form.Init()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// updatePicker forwards msg to the open cadence menu and applies its result.
func (m *BoardModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc", "q":
			m.picker = nil
			return m, nil
		}
	}

	model, cmd := m.picker.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.picker.form = f
	}

	switch m.picker.form.State {
	case huh.StateCompleted:
		selected := m.picker.selected()
		m.picker = nil
		return m, m.SetCadence(selected)
	case huh.StateAborted:
		m.picker = nil
		return m, nil
	case huh.StateNormal:
	}
	return m, cmd
}

// SetCadence switches the refresh interval. The previous schedule is
// invalidated; Disabled leaves the board idle until a cadence is chosen.
func (m *BoardModel) SetCadence(c cadence.Cadence) tea.Cmd {
	if c == m.current {
		return nil
	}

	m.logger.Debug().
		Str("from", m.current.Value()).
		Str("to", c.Value()).
		Msg("cadence changed")

	m.current = c
	if c.Enabled() {
		m.resume = c
	}
	m.generation++
	return m.tick()
}

// tick returns a command that sends a TickMsg after the current interval.
func (m *BoardModel) tick() tea.Cmd {
	if !m.current.Enabled() {
		return nil
	}
	gen := m.generation
	return tea.Tick(m.current.Duration(), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: gen}
	})
}

// refresh recomputes every row against a single instant.
func (m *BoardModel) refresh(instant time.Time) {
	rows, err := m.agg.ListReadings(instant, m.cfg.LocalZone, m.zones)
	if err != nil {
		m.logger.Warn().Err(err).Msg("board refresh failed")
		m.rows = nil
		m.err = err
		return
	}
	m.rows = rows
	m.err = nil
	m.updates++
	m.lastUpdate = instant
}

// View renders the current state to a string.
func (m *BoardModel) View() string {
	if m.quitting {
		return ""
	}

	styles := NewOutputStyles()
	var b strings.Builder

	b.WriteString(StyleBold.Render("World Clock"))
	b.WriteString(styles.Dim.Render("  " + m.cfg.LocalZone))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.Error.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(NewBoardTable(m.rows, m.loc, WithZoneColumn(m.cfg.ShowZone)).String())
	}

	for _, d := range m.skipped {
		b.WriteString(styles.Warning.Render("⚠ skipped " + d.Title + " (" + d.TimeZone + ")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.picker != nil {
		b.WriteString(m.picker.form.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderCadenceBar())
		b.WriteString("\n")
	}

	b.WriteString(styles.Dim.Render(m.StatusLine()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderCadenceBar lists the selector with the active interval highlighted.
func (m *BoardModel) renderCadenceBar() string {
	active := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	opts := cadence.Options()
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Cadence == m.current {
			parts = append(parts, active.Render("["+o.Label+"]"))
			continue
		}
		parts = append(parts, StyleDim.Render(" "+o.Label+" "))
	}
	return strings.Join(parts, " ")
}

// StatusLine renders "Updated N times / HH:mm:ss / Interval: <label>" in
// the board's language. The stamp is shown in the local zone.
func (m *BoardModel) StatusLine() string {
	stamp := "--:--:--"
	if !m.lastUpdate.IsZero() {
		t := m.lastUpdate
		if loc, err := m.calc.Resolver().Resolve(m.cfg.LocalZone); err == nil {
			t = t.In(loc)
		}
		stamp = t.Format(constants.StatusTimeLayout)
	}
	return m.loc.StatusLine(m.updates, stamp, m.current.Label())
}

// Rows returns the rows of the last successful refresh.
func (m *BoardModel) Rows() []zone.Row {
	return m.rows
}

// Err returns the error from the last refresh, if any.
func (m *BoardModel) Err() error {
	return m.err
}

// Updates returns how many refreshes have succeeded.
func (m *BoardModel) Updates() int64 {
	return m.updates
}

// Cadence returns the active refresh interval.
func (m *BoardModel) Cadence() cadence.Cadence {
	return m.current
}

// Generation returns the current schedule generation.
func (m *BoardModel) Generation() int {
	return m.generation
}

// Skipped returns the zones dropped because they could not be resolved.
func (m *BoardModel) Skipped() []zone.Descriptor {
	return m.skipped
}

// PickerOpen reports whether the cadence menu is showing.
func (m *BoardModel) PickerOpen() bool {
	return m.picker != nil
}

// IsQuitting returns true if the model is in quitting state.
func (m *BoardModel) IsQuitting() bool {
	return m.quitting
}
