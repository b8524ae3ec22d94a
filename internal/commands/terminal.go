package commands

import (
	"os"

	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 100

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalSize returns the size of the terminal on stdout. ok is false when
// stdout is not a terminal or its size cannot be read.
func terminalSize() (width, height int, ok bool) {
	if !stdoutIsTerminal() {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
