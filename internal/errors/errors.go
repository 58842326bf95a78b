// Package errors provides centralized error handling for worldclock.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidTimeZone indicates that a time zone id could not be resolved
	// against the zone database. Zone ids are static configuration, so this
	// error is never retried.
	ErrInvalidTimeZone = errors.New("invalid time zone")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrConfigNotFound indicates that the configuration file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigExists indicates that a configuration file already exists
	// and would be overwritten.
	ErrConfigExists = errors.New("config file already exists")

	// ErrNoZones indicates that no zones are configured for display.
	ErrNoZones = errors.New("no zones configured")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidTimestamp indicates that a user supplied instant could not be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrMenuCanceled indicates that the user canceled an interactive menu.
	ErrMenuCanceled = errors.New("menu canceled")

	// ErrNoMenuOptions indicates that a menu was requested without any options.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrInteractiveRequired indicates that an operation needs a terminal.
	ErrInteractiveRequired = errors.New("interactive terminal required")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// InvalidTimeZoneError names the zone id that failed to resolve.
// It matches ErrInvalidTimeZone with errors.Is().
type InvalidTimeZoneError struct {
	// ID is the offending zone id exactly as configured.
	ID string
	// Err is the underlying resolution failure, if any.
	Err error
}

// NewInvalidTimeZoneError creates an InvalidTimeZoneError for id.
func NewInvalidTimeZoneError(id string, cause error) *InvalidTimeZoneError {
	return &InvalidTimeZoneError{ID: id, Err: cause}
}

// Error implements the error interface.
func (e *InvalidTimeZoneError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrInvalidTimeZone, e.ID)
	}
	return fmt.Sprintf("%s: %q: %v", ErrInvalidTimeZone, e.ID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InvalidTimeZoneError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidTimeZone.
func (e *InvalidTimeZoneError) Is(target error) bool {
	return target == ErrInvalidTimeZone
}

// InvalidZoneID extracts the offending zone id from err.
// It returns false when err does not carry an InvalidTimeZoneError.
func InvalidZoneID(err error) (string, bool) {
	var tzErr *InvalidTimeZoneError
	if errors.As(err, &tzErr) {
		return tzErr.ID, true
	}
	return "", false
}

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
