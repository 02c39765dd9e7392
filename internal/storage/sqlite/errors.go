package sqlite

import "errors"

var (
	// ErrInvalidStationID indicates an empty station UUID.
	ErrInvalidStationID = errors.New("invalid station ID")
	// ErrStationNotFound indicates that a favorite cannot be found or was removed.
	ErrStationNotFound = errors.New("station not found")
	// ErrAlarmNotFound indicates that an alarm cannot be found.
	ErrAlarmNotFound = errors.New("alarm not found")
	// ErrInvalidAlarmTime indicates an hour or minute outside a 24h clock.
	ErrInvalidAlarmTime = errors.New("invalid alarm time")
)
