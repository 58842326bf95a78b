// Package cadence controls how often the clock board is refreshed.
//
// A Cadence is one of a fixed set of intervals, or Disabled. Parsing never
// fails: anything that is not a recognized interval is treated as Disabled,
// which is a legitimate idle state rather than a fault.
package cadence

import (
	"strconv"
	"strings"
	"time"
)

// Cadence is a refresh interval. The zero value is Disabled.
type Cadence time.Duration

// The enumerated cadences.
const (
	Disabled Cadence = 0
	Every100ms       = Cadence(100 * time.Millisecond)
	Every500ms       = Cadence(500 * time.Millisecond)
	Every1s          = Cadence(time.Second)
	Every5s          = Cadence(5 * time.Second)
)

// Option is one entry of the cadence selector.
type Option struct {
	Cadence Cadence
	// Label is the human readable name shown in menus.
	Label string
	// Value is the selector value; empty for Disabled, milliseconds otherwise.
	Value string
}

// Options returns the selector entries in display order.
func Options() []Option {
	return []Option{
		{Cadence: Disabled, Label: "stop timer", Value: ""},
		{Cadence: Every100ms, Label: "100 msec", Value: "100"},
		{Cadence: Every500ms, Label: "500 msec", Value: "500"},
		{Cadence: Every1s, Label: "1 sec", Value: "1000"},
		{Cadence: Every5s, Label: "5 sec", Value: "5000"},
	}
}

// Parse maps a selector value to a Cadence. Milliseconds ("500") and Go
// duration strings ("500ms", "5s") are accepted. Empty, non-numeric and
// unlisted values all yield Disabled.
func Parse(s string) Cadence {
	s = strings.TrimSpace(s)
	if s == "" {
		return Disabled
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromDuration(time.Duration(ms) * time.Millisecond)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return fromDuration(d)
	}
	return Disabled
}

// FromDuration maps d to its Cadence, or Disabled when d is not in the set.
func FromDuration(d time.Duration) Cadence {
	return fromDuration(d)
}

func fromDuration(d time.Duration) Cadence {
	for _, opt := range Options() {
		if time.Duration(opt.Cadence) == d {
			return opt.Cadence
		}
	}
	return Disabled
}

// Duration returns the interval. Disabled returns 0.
func (c Cadence) Duration() time.Duration {
	return time.Duration(c)
}

// Enabled reports whether c schedules refreshes at all.
func (c Cadence) Enabled() bool {
	return c != Disabled
}

// Label returns the selector label for c.
func (c Cadence) Label() string {
	return c.option().Label
}

// Value returns the selector value for c.
func (c Cadence) Value() string {
	return c.option().Value
}

// String returns the selector label.
func (c Cadence) String() string {
	return c.Label()
}

// Next returns the following option, wrapping from the last to Disabled.
func (c Cadence) Next() Cadence {
	opts := Options()
	return opts[(c.index()+1)%len(opts)].Cadence
}

// Prev returns the preceding option, wrapping from Disabled to the last.
func (c Cadence) Prev() Cadence {
	opts := Options()
	return opts[(c.index()+len(opts)-1)%len(opts)].Cadence
}

// At returns the option at position i of Options(), or Disabled when out of range.
func At(i int) Cadence {
	opts := Options()
	if i < 0 || i >= len(opts) {
		return Disabled
	}
	return opts[i].Cadence
}

func (c Cadence) index() int {
	for i, opt := range Options() {
		if opt.Cadence == c {
			return i
		}
	}
	return 0
}

func (c Cadence) option() Option {
	return Options()[c.index()]
}

// MarshalText renders c as its selector value, so config files store "1000".
func (c Cadence) MarshalText() ([]byte, error) {
	return []byte(c.Value()), nil
}

// UnmarshalText parses a selector value with Parse.
func (c *Cadence) UnmarshalText(text []byte) error {
	*c = Parse(string(text))
	return nil
}
