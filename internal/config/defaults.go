package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/worldclock/internal/cadence"
	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/zone"
)

// DefaultZones returns the built-in board: Tokyo, Singapore, Honolulu,
// Los Angeles and Auckland.
func DefaultZones() []zone.Descriptor {
	return []zone.Descriptor{
		{Title: "東京", TimeZone: "Asia/Tokyo"},
		{Title: "シンガポール", TimeZone: "Asia/Singapore"},
		{Title: "ホノルル", TimeZone: "Pacific/Honolulu"},
		{Title: "ロサンゼルス", TimeZone: "America/Los_Angeles"},
		{Title: "オークランド", TimeZone: "Pacific/Auckland"},
	}
}

// DefaultConfig returns a new Config with default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		LocalZone: constants.DefaultLocalZone,
		Zones:     DefaultZones(),
		Cadence:   cadence.FromDuration(constants.DefaultCadence),
		Language:  constants.DefaultLanguage,
		Display: DisplayConfig{
			ShowZone:    true,
			SkipInvalid: false,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	zones := make([]map[string]any, 0, len(def.Zones))
	for _, z := range def.Zones {
		zones = append(zones, map[string]any{"title": z.Title, "time_zone": z.TimeZone})
	}

	v.SetDefault("local_zone", def.LocalZone)
	v.SetDefault("zones", zones)
	v.SetDefault("cadence", def.Cadence.Value())
	v.SetDefault("language", def.Language)
	v.SetDefault("display.show_zone", def.Display.ShowZone)
	v.SetDefault("display.skip_invalid", def.Display.SkipInvalid)
}
