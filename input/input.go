package input

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

// None is the sentinel returned by Poll when no key is pending.
const None = byte(0)

type Input struct {
	keys     chan byte
	original *term.State
	stopping atomic.Bool
}

// New switches the terminal to raw mode best-effort and starts draining
// stdin. When raw mode can't be had the reader runs against whatever mode
// the terminal is in.
func New() *Input {
	in := &Input{keys: make(chan byte, 8)}

	if state, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
		in.original = state
	}

	go in.listenKeys()

	return in
}

// listenKeys reads 3 byte chunks so an arrow-key escape sequence arrives in
// a single read and gets dropped as a unit.
func (in *Input) listenKeys() {
	for !in.stopping.Load() {
		buf := make([]byte, 3)
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}

		key := Decode(buf[:n])
		if key == None {
			continue
		}

		select {
		case in.keys <- key:
		default: // Slow consumer, drop rather than stall the terminal.
		}
	}
}

// Poll returns the next buffered key, or None. It never blocks.
func (in *Input) Poll() byte {
	select {
	case key := <-in.keys:
		return key
	default:
		return None
	}
}

// Close restores the terminal settings captured at construction.
func (in *Input) Close() {
	in.stopping.Store(true)
	if in.original != nil {
		term.Restore(int(os.Stdin.Fd()), in.original)
	}
}

// Decode maps one read chunk to a single key. Escape sequences and any other
// multi-byte chunk are swallowed whole so no stray bytes leak into the game.
func Decode(buf []byte) byte {
	if len(buf) == 0 || buf[0] == 27 {
		return None
	}
	if len(buf) > 1 && buf[1] != 0 {
		return None
	}

	return buf[0]
}
