// Package terminal answers questions about the controlling terminal for
// diagnostic output mirrored to stderr.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsInteractive reports whether stderr is attached to a terminal; styled
// output should be skipped when it is not.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
