// Package zone computes clock readings for a board of time zones.
//
// The heart of the package is ComputeReading: given an instant and a pair of
// zones it reports the target zone's clock face, the signed whole-hour
// distance between that face read as a local time and the real local time,
// and whether the face falls on yesterday, today or tomorrow for the viewer.
//
// Everything in this package is free of shared mutable state. Callers pass the
// instant and the local zone explicitly on every call.
package zone

import (
	"github.com/mrz1836/worldclock/internal/constants"
)

// Descriptor binds a display title to a zone id. Descriptors come from
// configuration and are never modified by this package.
type Descriptor struct {
	// Title is the label shown next to the clock.
	Title string `json:"title" yaml:"title" mapstructure:"title"`
	// TimeZone is an IANA zone id such as "America/Los_Angeles".
	TimeZone string `json:"time_zone" yaml:"time_zone" mapstructure:"time_zone"`
}

// DayLabel describes how the reinterpreted clock face relates to the
// viewer's current calendar day.
type DayLabel int

// Day labels. DayNone covers any distance other than one day either way.
const (
	DayNone DayLabel = iota
	DayYesterday
	DayToday
	DayTomorrow
)

// String returns the canonical, unlocalized literal for the label.
func (d DayLabel) String() string {
	switch d {
	case DayYesterday:
		return constants.DayLabelYesterday
	case DayToday:
		return constants.DayLabelToday
	case DayTomorrow:
		return constants.DayLabelTomorrow
	default:
		return constants.DayLabelNone
	}
}

// MarshalText renders the label as its canonical literal.
func (d DayLabel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// dayLabelFor maps a signed civil-day distance to a label.
func dayLabelFor(days int) DayLabel {
	switch days {
	case -1:
		return DayYesterday
	case 0:
		return DayToday
	case 1:
		return DayTomorrow
	default:
		return DayNone
	}
}

// Reading is the derived state of a single clock at a single instant.
// It is recomputed on every evaluation and never stored.
type Reading struct {
	// FormattedTime is the target zone's clock face as "H:mm".
	FormattedTime string `json:"time"`
	// Day relates the reinterpreted face to the viewer's current day.
	Day DayLabel `json:"day"`
	// HourOffset is the signed whole-hour distance, truncated toward zero.
	HourOffset int `json:"hour_offset"`
}

// Offset renders HourOffset with an explicit sign ("+3", "-5", "+0").
func (r Reading) Offset() string {
	return FormatOffset(r.HourOffset)
}

// Row is one line of an aggregated board.
type Row struct {
	Title    string  `json:"title"`
	TimeZone string  `json:"time_zone"`
	Reading  Reading `json:"reading"`
}
