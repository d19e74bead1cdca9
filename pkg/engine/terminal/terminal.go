// Package terminal reports properties of the process's controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size used when f is not a terminal
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Size returns the width and height in cells of the terminal attached to f.
func Size(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal.
// Colored output is only worth producing when it is.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
