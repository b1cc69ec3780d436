package screen

import (
	"bytes"
	"errors"

	"golang.org/x/term"
)

type Screen struct {
	Width, Height int
	Terminal      *term.Terminal
}

var ErrBadSize = errors.New("screen dimensions should be positive")

// New hides the cursor and hands back a full-frame writer over trm.
func New(width, height int, trm *term.Terminal) (*Screen, error) {
	if width < 1 || height < 1 {
		return &Screen{}, ErrBadSize
	}

	scr := &Screen{Width: width, Height: height, Terminal: trm}
	if _, err := trm.Write([]byte("\033[?25l")); err != nil {
		return &Screen{}, err
	}

	return scr, nil
}

// Draw erases the previous frame and writes every line in one Write. Lines
// are joined with bare LFs; the Terminal writer adds the carriage returns
// raw mode needs.
func (scr *Screen) Draw(lines [][]byte) error {
	out := append([]byte("\033[2J\033[0;0H"), bytes.Join(lines, []byte("\n"))...)
	out = append(out, '\n')

	if _, err := scr.Terminal.Write(out); err != nil {
		return err
	}

	return nil
}

// Close shows the cursor again and resets attributes so the shell prompt
// comes back clean.
func (scr *Screen) Close() error {
	if _, err := scr.Terminal.Write(append([]byte("\033[?25h"), scr.Terminal.Escape.Reset...)); err != nil {
		return err
	}

	return nil
}
