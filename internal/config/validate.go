package config

import (
	"strings"

	"github.com/mrz1836/worldclock/internal/errors"
)

// Validate checks the configuration for structural problems.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - local_zone must not be empty
//   - zones must contain at least one entry
//   - every zone needs a title and a time_zone
//
// Zone ids are not resolved here; an unknown id is reported by the board
// as an invalid time zone when it is evaluated.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if strings.TrimSpace(cfg.LocalZone) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "local_zone must not be empty")
	}

	if len(cfg.Zones) == 0 {
		return errors.ErrNoZones
	}

	for i, z := range cfg.Zones {
		if strings.TrimSpace(z.Title) == "" {
			return errors.Wrapf(errors.ErrConfigInvalid, "zones[%d].title must not be empty", i)
		}
		if strings.TrimSpace(z.TimeZone) == "" {
			return errors.Wrapf(errors.ErrConfigInvalid, "zones[%d].time_zone must not be empty (%s)", i, z.Title)
		}
	}

	return nil
}
