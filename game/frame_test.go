package game

import (
	"bytes"
	"testing"
)

func TestFrameLayout(t *testing.T) {
	game := New(DefaultConfig())
	game.State.Food = Cord{10, 5}

	lines := game.Frame()

	if len(lines) != 22 {
		t.Fatalf("Expected 22 lines, got %d", len(lines))
	}
	for y, line := range lines {
		if len(line) != 50 {
			t.Fatalf("Expected line %d to be 50 cells wide, got %d", y, len(line))
		}
	}

	for _, cord := range []Cord{{0, 0}, {49, 0}, {0, 21}, {49, 21}, {0, 11}, {49, 11}} {
		if lines[cord.Y][cord.X] != '#' {
			t.Errorf("Expected wall at %v, got %q", cord, lines[cord.Y][cord.X])
		}
	}

	if lines[5][10] != '*' {
		t.Errorf("Expected food at (10,5), got %q", lines[5][10])
	}
	if lines[11][25] != 'O' {
		t.Errorf("Expected head at (25,11), got %q", lines[11][25])
	}
	if lines[11][24] != 'o' || lines[11][23] != 'o' {
		t.Error("Expected body segments at (24,11) and (23,11)")
	}

	if !bytes.Contains(lines[0], []byte("Score: 0")) {
		t.Errorf("Expected HUD on the top border, got %q", lines[0])
	}
}

func TestFrameGameOverBanner(t *testing.T) {
	game := New(DefaultConfig())

	if bytes.Contains(game.Frame()[11], []byte("GAME OVER")) {
		t.Error("Expected no banner while playing")
	}

	game.State.GameOver = true
	if !bytes.Contains(game.Frame()[11], []byte("GAME OVER  (R=restart, Q=quit)")) {
		t.Errorf("Expected banner on the middle row, got %q", game.Frame()[11])
	}
}

func TestFrameHUDClampedOnNarrowBoard(t *testing.T) {
	game := New(Config{Width: 12, Height: 8, StartTickMs: 110})
	game.State.Score = 12340

	lines := game.Frame()
	if lines[0][11] != '#' {
		t.Errorf("Expected HUD to stop short of the right wall, got %q", lines[0][11])
	}
}
