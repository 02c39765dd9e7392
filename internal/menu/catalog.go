package menu

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/station-menu/internal/station"
)

// CapabilityFlags is the snapshot of preference and platform support taken when
// a popup opens. It is never mutated afterwards.
type CapabilityFlags struct {
	PreferExternalPlayer      bool
	PlatformSupportsShortcuts bool
}

// Visibility reports whether an action is offerable under the given flags.
type Visibility func(CapabilityFlags) bool

// Always makes an action unconditionally visible.
func Always(CapabilityFlags) bool { return true }

// WhenPreferExternal is true when the user's default player is external, which
// is exactly when the in-app player has to be offered explicitly.
func WhenPreferExternal(f CapabilityFlags) bool { return f.PreferExternalPlayer }

// WhenPreferInternal is the complement of WhenPreferExternal.
func WhenPreferInternal(f CapabilityFlags) bool { return !f.PreferExternalPlayer }

// WhenShortcutsSupported gates actions on launcher shortcut support.
func WhenShortcutsSupported(f CapabilityFlags) bool { return f.PlatformSupportsShortcuts }

// Anchor is where a handler shows feedback for the user. undo may be nil.
type Anchor interface {
	Notify(message string, undo func() error)
}

// PinListener is told when a launcher shortcut was created.
type PinListener interface {
	ShortcutPinned(name, path string)
}

// Env carries host-provided context that handlers need. The dispatcher passes it
// through without looking at it.
type Env struct {
	Anchor      Anchor
	PinListener PinListener
}

// Handler performs one action on a station. Its error is returned to the caller
// of Dispatch unchanged.
type Handler func(ctx context.Context, st *station.Station, env Env) error

// ActionSpec binds an action to its visibility predicate and handler.
type ActionSpec struct {
	ID      ActionID
	Label   string
	Visible Visibility
	Handle  Handler
}

// Catalog is the ordered list of action specs. Order is presentation order.
type Catalog []ActionSpec

// Handlers holds one handler per action for NewCatalog.
type Handlers struct {
	PlayInternal   Handler
	PlayExternal   Handler
	VisitHomepage  Handler
	Share          Handler
	SetAlarm       Handler
	CreateShortcut Handler
	RemoveFavorite Handler
}

// NewCatalog builds the station popup catalog in its fixed order.
func NewCatalog(h Handlers) Catalog {
	return Catalog{
		{ID: PlayInternal, Label: "Play in station-menu", Visible: WhenPreferExternal, Handle: h.PlayInternal},
		{ID: PlayExternal, Label: "Play in external player", Visible: WhenPreferInternal, Handle: h.PlayExternal},
		{ID: VisitHomepage, Label: "Visit homepage", Visible: Always, Handle: h.VisitHomepage},
		{ID: Share, Label: "Share", Visible: Always, Handle: h.Share},
		{ID: SetAlarm, Label: "Set as alarm", Visible: Always, Handle: h.SetAlarm},
		{ID: CreateShortcut, Label: "Create shortcut", Visible: WhenShortcutsSupported, Handle: h.CreateShortcut},
		{ID: RemoveFavorite, Label: "Remove from favorites", Visible: Always, Handle: h.RemoveFavorite},
	}
}

// Validate checks that every entry is complete and each ID appears once.
func (c Catalog) Validate() error {
	seen := make(map[ActionID]bool, len(c))
	for i, spec := range c {
		if spec.ID == ActionUnknown {
			return fmt.Errorf("menu: catalog entry %d has no action id", i)
		}
		if seen[spec.ID] {
			return fmt.Errorf("menu: duplicate catalog entry for %s", spec.ID)
		}
		seen[spec.ID] = true
		if spec.Visible == nil {
			return fmt.Errorf("menu: %s has no visibility predicate", spec.ID)
		}
		if spec.Handle == nil {
			return fmt.Errorf("menu: %s has no handler", spec.ID)
		}
	}
	return nil
}

// Resolve returns, in catalog order, the IDs of the actions visible under flags.
func Resolve(catalog Catalog, flags CapabilityFlags) []ActionID {
	ids := make([]ActionID, 0, len(catalog))
	for _, spec := range visibleSpecs(catalog, flags) {
		ids = append(ids, spec.ID)
	}
	return ids
}

func visibleSpecs(catalog Catalog, flags CapabilityFlags) []ActionSpec {
	specs := make([]ActionSpec, 0, len(catalog))
	for _, spec := range catalog {
		if spec.Visible != nil && spec.Visible(flags) {
			specs = append(specs, spec)
		}
	}
	return specs
}
