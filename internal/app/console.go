package app

import (
	"fmt"

	"github.com/cristianoliveira/station-menu/internal/errors"
)

// ConsoleAnchor reports handler feedback on the terminal. Undo cannot be
// offered interactively, so UndoHint is printed instead when a handler
// provides an undo.
type ConsoleAnchor struct {
	Out      errors.ErrorHandler
	UndoHint string
}

// Notify implements menu.Anchor.
func (a ConsoleAnchor) Notify(message string, undo func() error) {
	a.out().Success(message)
	if undo != nil && a.UndoHint != "" {
		a.out().Info(a.UndoHint)
	}
}

// ShortcutPinned implements menu.PinListener.
func (a ConsoleAnchor) ShortcutPinned(name, path string) {
	a.out().Info(fmt.Sprintf("Launcher for %s written to %s", name, path))
}

func (a ConsoleAnchor) out() errors.ErrorHandler {
	if a.Out == nil {
		return errors.NewDefaultCLIHandler()
	}
	return a.Out
}
