// Package terminal answers questions about the terminal the game writes to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size used when the output is not a terminal.
const (
	FallbackColumns = 80
	FallbackRows    = 24
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the columns and rows of the terminal behind f, or the fallback size
// when f is not a terminal.
func Size(f *os.File) (cols, rows int) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return FallbackColumns, FallbackRows
	}
	return cols, rows
}

// Columns returns the usable width for output to f. Files and pipes get no limit.
func Columns(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	cols, _ := Size(f)
	return cols
}
