package player

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard copies share text to the system clipboard.
type Clipboard struct {
	write func(string) error
}

// NewClipboard returns a Clipboard backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// Available reports whether a clipboard program was found.
func (c *Clipboard) Available() bool {
	return !clipboard.Unsupported
}

// Share copies text.
func (c *Clipboard) Share(text string) error {
	if err := c.write(text); err != nil {
		return fmt.Errorf("player: copy to clipboard: %w", err)
	}
	return nil
}
