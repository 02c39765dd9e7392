// Package capability takes the snapshot of user preference and platform support
// that decides which popup actions are offered.
package capability

import (
	"runtime"
	"strings"

	"github.com/cristianoliveira/station-menu/internal/config"
	"github.com/cristianoliveira/station-menu/internal/menu"
)

// PreferenceSource reports the user's player preference.
type PreferenceSource interface {
	PreferExternalPlayer() bool
}

// PlatformProbe reports whether launcher shortcuts can be created.
type PlatformProbe interface {
	SupportsShortcuts() bool
}

// ConfigPreferences reads preferences from the global config.
type ConfigPreferences struct{}

// PreferExternalPlayer returns the play_external setting.
func (ConfigPreferences) PreferExternalPlayer() bool {
	return config.GetBool("play_external", false)
}

// RuntimeProbe answers from the shortcuts setting, falling back to the OS when
// it is "auto".
type RuntimeProbe struct {
	// GOOS overrides runtime.GOOS when set.
	GOOS string
}

var desktopEntryOS = map[string]bool{
	"linux":   true,
	"freebsd": true,
	"netbsd":  true,
	"openbsd": true,
}

// SupportsShortcuts implements PlatformProbe.
func (p RuntimeProbe) SupportsShortcuts() bool {
	switch strings.ToLower(config.Get("shortcuts", "auto")) {
	case "true":
		return true
	case "false":
		return false
	}
	goos := p.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return desktopEntryOS[goos]
}

// Snapshot queries both sources once. Nil sources count as false.
func Snapshot(pref PreferenceSource, probe PlatformProbe) menu.CapabilityFlags {
	var flags menu.CapabilityFlags
	if pref != nil {
		flags.PreferExternalPlayer = pref.PreferExternalPlayer()
	}
	if probe != nil {
		flags.PlatformSupportsShortcuts = probe.SupportsShortcuts()
	}
	return flags
}

// Current returns the snapshot for the global config and the running OS.
func Current() menu.CapabilityFlags {
	return Snapshot(ConfigPreferences{}, RuntimeProbe{})
}
