// internal/textutil/textutil.go

// Package textutil provides the text layout helpers shared by help and
// error rendering: word wrapping, column padding and terminal geometry.
package textutil

import (
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is the render width assumed when the output is not a
// terminal or its size cannot be determined.
const DefaultWidth = 80

// Wrap breaks text into lines no wider than width. A non-positive
// width disables wrapping.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
}

// PadRight pads s with spaces up to width. Strings already at or past
// the width are returned unchanged.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// fdWriter is satisfied by *os.File and anything else backed by a file
// descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind w,
// falling back to DefaultWidth for pipes, buffers and size failures.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok {
		return DefaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
