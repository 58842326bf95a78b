package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/worldclock/internal/zone"
)

func TestHasColorSupport(t *testing.T) {
	tests := []struct {
		name    string
		noColor *string
		term    string
		want    bool
	}{
		{name: "default", term: "xterm-256color", want: true},
		{name: "no color empty", noColor: new(string), term: "xterm", want: false},
		{name: "dumb terminal", term: "dumb", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			if tt.noColor != nil {
				t.Setenv("NO_COLOR", *tt.noColor)
			} else {
				t.Setenv("NO_COLOR", "")
				unsetEnv(t, "NO_COLOR")
			}
			assert.Equal(t, tt.want, HasColorSupport())
		})
	}
}

func TestDayColors(t *testing.T) {
	t.Parallel()

	colors := DayColors()

	assert.Equal(t, ColorSuccess, colors[zone.DayToday])
	assert.Equal(t, ColorMuted, colors[zone.DayYesterday])
	assert.Equal(t, ColorWarning, colors[zone.DayTomorrow])
	_, ok := colors[zone.DayNone]
	assert.False(t, ok)
}

func TestTableStyles_DayStyleNoneIsPlain(t *testing.T) {
	t.Parallel()

	s := NewTableStyles()

	assert.Equal(t, "x", s.DayStyle(zone.DayNone).Render("x"))
}
