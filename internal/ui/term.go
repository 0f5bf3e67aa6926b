package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a terminal.
// Color and spinner output are suppressed when piped.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
