package screen

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/term"
)

func newTestTerminal(out *bytes.Buffer) *term.Terminal {
	return term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{strings.NewReader(""), out}, "")
}

func TestNewRejectsBadSize(t *testing.T) {
	out := &bytes.Buffer{}

	if _, err := New(0, 5, newTestTerminal(out)); !errors.Is(err, ErrBadSize) {
		t.Errorf("Expected ErrBadSize, got %v", err)
	}
	if _, err := New(5, -1, newTestTerminal(out)); !errors.Is(err, ErrBadSize) {
		t.Errorf("Expected ErrBadSize, got %v", err)
	}
}

func TestDrawWritesFullFrame(t *testing.T) {
	out := &bytes.Buffer{}
	scr, err := New(2, 2, newTestTerminal(out))
	if err != nil {
		t.Fatalf("Expected screen, got error %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("\033[?25l")) {
		t.Error("Expected cursor hidden on open")
	}

	out.Reset()
	if err := scr.Draw([][]byte{[]byte("ab"), []byte("cd")}); err != nil {
		t.Fatalf("Expected draw to succeed, got %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("\033[2J\033[0;0H")) {
		t.Error("Expected clear and cursor home before the frame")
	}
	if !bytes.Contains(out.Bytes(), []byte("ab\r\ncd")) {
		t.Errorf("Expected CR-LF joined lines, got %q", out.String())
	}
	if bytes.Contains(out.Bytes(), []byte("\r\r")) {
		t.Errorf("Expected a single carriage return per line, got %q", out.String())
	}
}

func TestCloseRestoresCursor(t *testing.T) {
	out := &bytes.Buffer{}
	scr, err := New(2, 2, newTestTerminal(out))
	if err != nil {
		t.Fatalf("Expected screen, got error %v", err)
	}

	if err := scr.Close(); err != nil {
		t.Fatalf("Expected close to succeed, got %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("\033[?25h")) {
		t.Error("Expected cursor shown on close")
	}
}
