package player

import "errors"

var (
	// ErrEmptyCommand is returned when a command template has no program.
	ErrEmptyCommand = errors.New("player: empty command template")

	// ErrEmptyURL is returned when there is nothing to open.
	ErrEmptyURL = errors.New("player: empty url")

	// ErrMeterUnavailable is returned when the network state cannot be queried.
	ErrMeterUnavailable = errors.New("player: metered state unavailable")
)
