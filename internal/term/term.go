// Package term reports properties of the terminal attached to a file.
package term

import "os"

// DefaultWidth is returned by [Width] when f is not a terminal.
const DefaultWidth = 100

// Width returns the number of columns of the terminal attached to f, or
// [DefaultWidth] if f is not a terminal.
func Width(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	if w, ok := width(f.Fd()); ok && w > 0 {
		return w
	}
	return DefaultWidth
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	_, ok := width(f.Fd())
	return ok
}
