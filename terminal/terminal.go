// Package terminal clears the screen between rendered frames.
package terminal

import (
	"io"

	"golang.org/x/term"
)

// ClearSequence moves the cursor home, erases the screen and erases the
// scrollback buffer.
const ClearSequence = "\x1b[H\x1b[2J\x1b[3J"

// Clearer writes [ClearSequence] to W.
//
// When W is not a terminal the sequence is skipped unless Force is set, so
// redirected output holds only frames.
type Clearer struct {
	W     io.Writer
	Force bool
}

// NewClearer returns a [Clearer] writing to w. When force is set the
// sequence is written even if w is not a terminal.
func NewClearer(w io.Writer, force bool) *Clearer {
	return &Clearer{W: w, Force: force}
}

// Clear resets the visible terminal content.
func (c *Clearer) Clear() error {
	if !c.Force && !IsTerminal(c.W) {
		return nil
	}

	_, err := io.WriteString(c.W, ClearSequence)

	return err
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}
