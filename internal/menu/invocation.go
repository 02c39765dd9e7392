package menu

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cristianoliveira/station-menu/internal/station"
)

// ErrInvocationReused is matched by every ReuseError.
var ErrInvocationReused = errors.New("menu invocation already used")

// State is the lifecycle state of an Invocation.
type State int32

const (
	// StateOpen accepts exactly one dispatch.
	StateOpen State = iota
	// StateConsumed is entered on the first dispatch, handled or not.
	StateConsumed
	// StateDiscarded is entered when the popup closes without a selection.
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateConsumed:
		return "consumed"
	case StateDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// DispatchResult tells the host whether a selection matched a visible action.
type DispatchResult int

const (
	// Unhandled means no visible action matched the selection.
	Unhandled DispatchResult = iota
	// Handled means the matching handler ran.
	Handled
)

func (r DispatchResult) String() string {
	if r == Handled {
		return "handled"
	}
	return "unhandled"
}

// ReuseError is returned when Dispatch is called on an invocation that is no
// longer open. It is a caller bug, never a user-facing condition.
type ReuseError struct {
	Selection ActionID
	State     State
}

func (e *ReuseError) Error() string {
	return fmt.Sprintf("menu: dispatch of %s on %s invocation", e.Selection, e.State)
}

// Is makes errors.Is(err, ErrInvocationReused) hold.
func (e *ReuseError) Is(target error) bool {
	return target == ErrInvocationReused
}

// Invocation is one popup presentation: a flags snapshot, the actions visible
// under it, and a one-shot consumption flag.
type Invocation struct {
	flags   CapabilityFlags
	visible []ActionSpec
	state   atomic.Int32
}

// Open resolves catalog against flags and returns an invocation ready for one
// selection.
func Open(catalog Catalog, flags CapabilityFlags) *Invocation {
	return &Invocation{
		flags:   flags,
		visible: visibleSpecs(catalog, flags),
	}
}

// Flags returns the capability snapshot the invocation was opened with.
func (inv *Invocation) Flags() CapabilityFlags {
	return inv.flags
}

// Actions returns the visible action IDs in presentation order.
func (inv *Invocation) Actions() []ActionID {
	ids := make([]ActionID, len(inv.visible))
	for i, spec := range inv.visible {
		ids[i] = spec.ID
	}
	return ids
}

// Label returns the display label of a visible action.
func (inv *Invocation) Label(id ActionID) (string, bool) {
	spec, ok := inv.lookup(id)
	if !ok {
		return "", false
	}
	return spec.Label, true
}

// State returns the current lifecycle state.
func (inv *Invocation) State() State {
	return State(inv.state.Load())
}

// Dispatch consumes the invocation and runs the handler bound to selection, if
// selection is visible. Hidden and unknown selections return Unhandled. The
// handler's error is returned as is. Any dispatch after the first, or after
// Discard, returns a *ReuseError without running anything.
func (inv *Invocation) Dispatch(ctx context.Context, selection ActionID, st *station.Station, env Env) (DispatchResult, error) {
	if !inv.state.CompareAndSwap(int32(StateOpen), int32(StateConsumed)) {
		return Unhandled, &ReuseError{Selection: selection, State: inv.State()}
	}
	spec, ok := inv.lookup(selection)
	if !ok || spec.Handle == nil {
		return Unhandled, nil
	}
	return Handled, spec.Handle(ctx, st, env)
}

// Discard closes an open invocation without a selection. It reports whether the
// invocation was still open; dismissing after a selection is a no-op.
func (inv *Invocation) Discard() bool {
	return inv.state.CompareAndSwap(int32(StateOpen), int32(StateDiscarded))
}

func (inv *Invocation) lookup(id ActionID) (ActionSpec, bool) {
	for _, spec := range inv.visible {
		if spec.ID == id {
			return spec, true
		}
	}
	return ActionSpec{}, false
}
