// Package constants provides centralized constant values used throughout worldclock.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by worldclock.
const (
	// AppHome is the hidden directory name where worldclock stores its config and logs.
	// This directory is created in the user's home directory.
	AppHome = ".worldclock"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// HomeEnvVar overrides the location of AppHome.
	HomeEnvVar = "WORLDCLOCK_HOME"

	// EnvPrefix is the prefix for configuration environment variables.
	EnvPrefix = "WORLDCLOCK"
)

// File names.
const (
	// GlobalConfigName is the name of the global configuration file inside AppHome.
	GlobalConfigName = "config.yaml"

	// CLILogFileName is the name of the rotated CLI log file inside AppHome/logs.
	CLILogFileName = "worldclock.log"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the size in megabytes at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to retain rotated log files.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// Defaults for the clock board.
const (
	// DefaultLocalZone is the reference zone readings are compared against.
	DefaultLocalZone = "Asia/Tokyo"

	// DefaultCadence is the default refresh interval for watch mode.
	DefaultCadence = 1000 * time.Millisecond

	// DefaultLanguage is the language used for day labels.
	DefaultLanguage = "en"

	// LocationCacheSize bounds the number of resolved zones kept in memory.
	LocationCacheSize = 1024
)

// Day label literals. These are the canonical, unlocalized values used in
// machine-readable output.
const (
	DayLabelYesterday = "Yesterday"
	DayLabelToday     = "Today"
	DayLabelTomorrow  = "Tomorrow"
	DayLabelNone      = "None"
)

// Display formats.
const (
	// StatusTimeLayout is used for the "last updated" stamp in the board footer.
	StatusTimeLayout = "15:04:05"
)
