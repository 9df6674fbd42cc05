// Package terminal queries the controlling terminal and writes the
// cursor and screen control sequences used by watch mode.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Control sequences.
const (
	HideCursorSeq  = "\x1b[?25l"
	ShowCursorSeq  = "\x1b[?25h"
	ClearScreenSeq = "\x1b[2J"
	CursorHomeSeq  = "\x1b[H"
)

// Terminal reports the size of the terminal attached to a file.
type Terminal struct {
	fd int
}

// New returns a Terminal for f, normally os.Stdout.
func New(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

// Stdout returns a Terminal for standard output.
func Stdout() *Terminal {
	return New(os.Stdout)
}

// Size returns the current terminal dimensions in character cells.
func (t *Terminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// IsTerminal reports whether the file descriptor is a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// HideCursor hides the text cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, HideCursorSeq)
}

// ShowCursor restores the text cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, ShowCursorSeq)
}

// Clear erases the screen and moves the cursor to the top-left corner.
func Clear(w io.Writer) {
	io.WriteString(w, ClearScreenSeq+CursorHomeSeq)
}
