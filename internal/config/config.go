// Package config provides configuration management for worldclock with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (WORLDCLOCK_* prefix)
//  3. Config file (--config path, or ~/.worldclock/config.yaml)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants, internal/errors and
// the leaf value packages internal/cadence and internal/zone, but MUST NOT
// import internal/cli or internal/tui.
package config

import (
	"github.com/mrz1836/worldclock/internal/cadence"
	"github.com/mrz1836/worldclock/internal/zone"
)

// Config is the root configuration structure for worldclock.
type Config struct {
	// LocalZone is the reference zone every clock is compared against.
	// Default: "Asia/Tokyo"
	LocalZone string `yaml:"local_zone" json:"local_zone" mapstructure:"local_zone"`

	// Zones is the ordered list of clocks on the board.
	Zones []zone.Descriptor `yaml:"zones" json:"zones" mapstructure:"zones"`

	// Cadence is the refresh interval for watch mode: "", "100", "500", "1000" or "5000".
	// Anything else means the timer is stopped.
	// Default: "1000"
	Cadence cadence.Cadence `yaml:"cadence" json:"cadence" mapstructure:"cadence"`

	// Language selects the day-label language ("en" or "ja").
	// Default: "en"
	Language string `yaml:"language" json:"language" mapstructure:"language"`

	// Display contains presentation settings.
	Display DisplayConfig `yaml:"display" json:"display" mapstructure:"display"`
}

// DisplayConfig contains presentation settings for show and watch.
type DisplayConfig struct {
	// ShowZone adds the zone id column to tables.
	// Default: true
	ShowZone bool `yaml:"show_zone" json:"show_zone" mapstructure:"show_zone"`

	// SkipInvalid drops clocks whose zone cannot be resolved instead of failing the board.
	// Default: false
	SkipInvalid bool `yaml:"skip_invalid" json:"skip_invalid" mapstructure:"skip_invalid"`
}
