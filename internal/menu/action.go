// Package menu resolves which station actions a popup offers and routes the
// single selection made from it to exactly one handler.
//
// The package has two halves. Resolve is a pure filter over a fixed, ordered
// Catalog. An Invocation snapshots the filtered catalog for one popup and hands
// out at most one dispatch; every later dispatch fails with a ReuseError.
package menu

import "strings"

// ActionID identifies one offerable station action.
type ActionID int

// The closed set of station actions. ActionUnknown is never part of a catalog.
const (
	ActionUnknown ActionID = iota
	PlayInternal
	PlayExternal
	VisitHomepage
	Share
	SetAlarm
	CreateShortcut
	RemoveFavorite
)

var actionNames = map[ActionID]string{
	PlayInternal:   "play-internal",
	PlayExternal:   "play-external",
	VisitHomepage:  "visit-homepage",
	Share:          "share",
	SetAlarm:       "set-alarm",
	CreateShortcut: "create-shortcut",
	RemoveFavorite: "remove-favorite",
}

// AllActions lists every known action in presentation order.
func AllActions() []ActionID {
	return []ActionID{
		PlayInternal,
		PlayExternal,
		VisitHomepage,
		Share,
		SetAlarm,
		CreateShortcut,
		RemoveFavorite,
	}
}

// String returns the kebab-case name used on the command line and in hooks.
func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseActionID maps a name back to its ActionID. Unknown names, including
// names of actions added by newer hosts, yield ActionUnknown.
func ParseActionID(name string) ActionID {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for id, n := range actionNames {
		if n == normalized {
			return id
		}
	}
	return ActionUnknown
}
