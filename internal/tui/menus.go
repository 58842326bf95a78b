package tui

// This file provides the interactive menu system using Charm Huh. Menus
// support arrow keys, Enter to select and q/Esc to cancel, and adapt to
// the terminal width.

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/worldclock/internal/cadence"
	wcerrors "github.com/mrz1836/worldclock/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters to leave between
	// menu content and the terminal edge for visual padding.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	MinMenuWidth = 40

	// DefaultMenuWidth is used when the terminal width is unknown.
	DefaultMenuWidth = 60
)

// ErrMenuCanceled is an alias for errors.ErrMenuCanceled for package-local use.
// Returned when the user cancels a menu operation by pressing q or Escape.
var ErrMenuCanceled = wcerrors.ErrMenuCanceled

// Option represents a selectable menu option.
type Option struct {
	// Label is the display text shown to the user.
	Label string
	// Description is optional help text shown after the label.
	Description string
	// Value is the value returned when this option is selected.
	Value string
}

// MenuConfig holds configuration for menu components.
type MenuConfig struct {
	// Width is the maximum width for the menu. If 0, adapts to terminal width.
	Width int
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// ShowKeyHints controls whether key hints are displayed.
	ShowKeyHints bool
}

// MenuConfigOption is a functional option for configuring MenuConfig.
type MenuConfigOption func(*MenuConfig)

// WithMenuWidth sets the menu width.
func WithMenuWidth(width int) MenuConfigOption {
	return func(c *MenuConfig) {
		c.Width = width
	}
}

// WithMenuAccessible enables or disables accessible mode.
func WithMenuAccessible(enabled bool) MenuConfigOption {
	return func(c *MenuConfig) {
		c.Accessible = enabled
	}
}

// NewMenuConfig creates a MenuConfig with defaults.
// It detects accessible mode from the ACCESSIBLE environment variable.
func NewMenuConfig(opts ...MenuConfigOption) *MenuConfig {
	_, accessible := os.LookupEnv("ACCESSIBLE")

	c := &MenuConfig{
		Width:        DefaultMenuWidth,
		Accessible:   accessible,
		ShowKeyHints: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// adaptWidth returns an appropriate menu width based on terminal size.
// It respects the maxWidth constraint while adapting to narrower terminals.
func adaptWidth(maxWidth int) int {
	width := TerminalWidth()
	if width <= 0 {
		if maxWidth <= 0 {
			return DefaultMenuWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin

	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}

	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}

	return availableWidth
}

// runFormWithConfig creates and runs a form with the given field and config.
// The errorContext parameter is used to wrap errors with descriptive context.
func runFormWithConfig(field huh.Field, cfg *MenuConfig, errorContext string) error {
	// Without a terminal the form would block forever.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrMenuCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithWidth(adaptWidth(cfg.Width)).
		WithAccessible(cfg.Accessible).
		WithShowHelp(cfg.ShowKeyHints)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	return nil
}

// Theme returns the Huh theme mapped onto the worldclock colors.
func Theme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// huhOptions converts menu options, folding descriptions into the label.
func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = opt.Label + " - " + opt.Description
		}
		out[i] = huh.NewOption(label, opt.Value)
	}
	return out
}

// Select presents a single-selection menu and returns the selected value.
// Returns ErrMenuCanceled if user presses q or Esc.
func Select(title string, options []Option) (string, error) {
	return SelectWithConfig(title, options, NewMenuConfig())
}

// SelectWithConfig presents a single-selection menu with custom configuration.
func SelectWithConfig(title string, options []Option, cfg *MenuConfig) (string, error) {
	if len(options) == 0 {
		return "", wcerrors.ErrNoMenuOptions
	}

	var selected string

	selectField := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&selected)

	if err := runFormWithConfig(selectField, cfg, "select menu failed"); err != nil {
		return "", err
	}

	return selected, nil
}

// Confirm presents a yes/no confirmation prompt.
// Returns the user's choice or ErrMenuCanceled if canceled.
func Confirm(message string, defaultYes bool) (bool, error) {
	confirmed := defaultYes

	confirmField := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runFormWithConfig(confirmField, NewMenuConfig(), "confirm prompt failed"); err != nil {
		return false, err
	}

	return confirmed, nil
}

// CadenceOptions returns the cadence selector as menu options, marking current.
func CadenceOptions(current cadence.Cadence) []Option {
	opts := cadence.Options()
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		opt := Option{Label: o.Label, Value: o.Value}
		if o.Cadence == current {
			opt.Description = "current"
		}
		out = append(out, opt)
	}
	return out
}

// SelectCadence asks the user for a refresh interval.
func SelectCadence(current cadence.Cadence) (cadence.Cadence, error) {
	value, err := Select("Refresh interval", CadenceOptions(current))
	if err != nil {
		return current, err
	}
	return cadence.Parse(value), nil
}

// cadencePicker is a cadence Select embedded in the running board.
type cadencePicker struct {
	form  *huh.Form
	value *string
}

// newCadencePicker builds a picker form preselected on current.
func newCadencePicker(current cadence.Cadence) *cadencePicker {
	value := current.Value()
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Refresh interval").
			Options(huhOptions(CadenceOptions(current))...).
			Value(&value),
	)).WithTheme(Theme()).WithShowHelp(false)

	return &cadencePicker{form: form, value: &value}
}

// selected returns the chosen cadence.
func (p *cadencePicker) selected() cadence.Cadence {
	return cadence.Parse(*p.value)
}
