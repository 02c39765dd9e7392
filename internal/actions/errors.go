package actions

import "errors"

var (
	// ErrPlaybackDeclined is returned when the user declines streaming on a metered network.
	ErrPlaybackDeclined = errors.New("actions: playback declined on metered network")

	// ErrNoHomepage is returned when a station has no homepage to visit.
	ErrNoHomepage = errors.New("actions: station has no homepage")

	// ErrNoAnchor is returned by actions that need somewhere to show feedback.
	ErrNoAnchor = errors.New("actions: no feedback anchor")

	// ErrUnavailable is returned when a dependency an action needs was not configured.
	ErrUnavailable = errors.New("actions: action not available")
)
