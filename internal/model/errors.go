package model

import (
	"errors"
	"fmt"
)

// Error kinds used across the application. Structured errors below match
// these with errors.Is so callers can assert on the kind of a failure.
var (
	// Startup errors
	ErrConfiguration = errors.New("invalid challenger configuration")

	// Request errors
	ErrUnknownChallenger = errors.New("unknown challenger")
	ErrInvalidPick       = errors.New("invalid pick")

	// Opponent errors
	ErrChallengerUnavailable = errors.New("challenger unavailable")
)

// ConfigurationError reports malformed or empty challenger configuration.
// It is fatal at startup.
type ConfigurationError struct {
	// Index is the position of the offending definition, or -1 when the
	// problem concerns the configuration as a whole
	Index  int
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "challenger configuration: " + e.Reason
	if e.Index >= 0 {
		msg = fmt.Sprintf("challenger configuration: entry %d: %s", e.Index, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UnknownChallengerError reports a challenger name that is not registered
type UnknownChallengerError struct {
	Name string
}

func (e *UnknownChallengerError) Error() string {
	return fmt.Sprintf("unknown challenger %q", e.Name)
}

func (e *UnknownChallengerError) Is(target error) bool { return target == ErrUnknownChallenger }

// InvalidPickError reports a pick outside [0,4] and which side supplied it
type InvalidPickError struct {
	Side  Side
	Value int
}

func (e *InvalidPickError) Error() string {
	return fmt.Sprintf("invalid %s pick %d: must be between %d and %d", e.Side, e.Value, MinPick, MaxPick)
}

func (e *InvalidPickError) Is(target error) bool { return target == ErrInvalidPick }

// IsInvalidArgument reports whether err is caused by the caller's input
// rather than by the server.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrUnknownChallenger) || errors.Is(err, ErrInvalidPick)
}
