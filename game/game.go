package game

import (
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"time"

	"GoSnake/input"
	"GoSnake/screen"

	"github.com/HandyGold75/GOLib/logger"
	"golang.org/x/term"
)

type (
	// Cord is a grid coordinate, x growing right and y growing down.
	Cord struct{ X, Y int }

	Direction int8

	gameState struct {
		Snake    []Cord
		Food     Cord
		Dir      Direction
		Score    int
		TickMs   int
		GameOver bool
	}

	Game struct {
		Config Config
		State  gameState
		Screen *screen.Screen
		Input  *input.Input
		Lgr    *logger.Logger

		quit bool
	}
)

const (
	Up Direction = iota
	Down
	Left
	Right
)

const (
	foodScore   = 10
	speedupMs   = 2
	minTickMs   = 55
	startLength = 3

	ctrlC byte = 3
	ctrlD byte = 4

	frameDelay = 8 * time.Millisecond
)

var ErrNotATerminal = errors.New("stdin/ stdout should be a terminal")

func (dir Direction) delta() Cord {
	switch dir {
	case Up:
		return Cord{0, -1}
	case Down:
		return Cord{0, 1}
	case Left:
		return Cord{-1, 0}
	default:
		return Cord{1, 0}
	}
}

func (dir Direction) opposite() Direction {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// New builds a game on cfg without touching the terminal. Run attaches the
// screen and input. The config is clamped so Reset always fits the body and
// the spawn interior inside the walls.
func New(cfg Config) *Game {
	game := &Game{Config: cfg.clamped()}
	game.Reset()
	return game
}

// Reset puts the board back to its starting position: a 3 segment snake in
// the middle heading right, fresh food, initial speed.
func (game *Game) Reset() {
	midX, midY := game.Config.Width/2, game.Config.Height/2

	snake := make([]Cord, 0, startLength)
	for i := range startLength {
		snake = append(snake, Cord{midX - i, midY})
	}

	game.State = gameState{Snake: snake, Dir: Right, TickMs: game.Config.StartTickMs}
	game.SpawnFood()
}

func (game *Game) HandleKey(key byte) {
	switch key {
	case 'q', 'Q', ctrlC, ctrlD:
		game.quit = true
		game.log("medium", "Quitting", "score "+strconv.Itoa(game.State.Score))
	case 'r', 'R':
		if game.State.GameOver {
			game.Reset()
			game.log("medium", "Restarting", "")
		}
	case 'w', 'W':
		game.turn(Up)
	case 's', 'S':
		game.turn(Down)
	case 'a', 'A':
		game.turn(Left)
	case 'd', 'D':
		game.turn(Right)
	}
}

// turn ignores reversals so the head can't fold straight into the neck.
func (game *Game) turn(dir Direction) {
	if game.State.Dir.opposite() != dir {
		game.State.Dir = dir
	}
}

// Step advances the simulation by one tick. Collisions are checked before
// any mutation so the body is left as-is on game over.
func (game *Game) Step() {
	if game.State.GameOver {
		return
	}

	delta := game.State.Dir.delta()
	next := Cord{game.State.Snake[0].X + delta.X, game.State.Snake[0].Y + delta.Y}

	if game.hitWall(next) {
		game.State.GameOver = true
		game.log("medium", "GameOver", "wall, score "+strconv.Itoa(game.State.Score))
		return
	}
	if slices.Contains(game.State.Snake, next) {
		game.State.GameOver = true
		game.log("medium", "GameOver", "self, score "+strconv.Itoa(game.State.Score))
		return
	}

	game.State.Snake = slices.Insert(game.State.Snake, 0, next)

	if next == game.State.Food {
		game.State.Score += foodScore
		game.State.TickMs = max(minTickMs, game.State.TickMs-speedupMs)
		game.SpawnFood()
		game.log("low", "Eating", "score "+strconv.Itoa(game.State.Score)+", tick "+strconv.Itoa(game.State.TickMs)+"ms")
		return
	}

	game.State.Snake = slices.Delete(game.State.Snake, len(game.State.Snake)-1, len(game.State.Snake))
}

func (game *Game) hitWall(cord Cord) bool {
	return cord.X <= 0 || cord.X >= game.Config.Width-1 || cord.Y <= 0 || cord.Y >= game.Config.Height-1
}

// SpawnFood places food on a free interior cell. A body covering the whole
// interior ends the game instead of spinning in the sample loop.
func (game *Game) SpawnFood() {
	if len(game.State.Snake) >= (game.Config.Width-2)*(game.Config.Height-2) {
		game.State.GameOver = true
		game.log("medium", "GameOver", "board full, score "+strconv.Itoa(game.State.Score))
		return
	}

	for {
		cord := Cord{nextInt(1, game.Config.Width-2), nextInt(1, game.Config.Height-2)}
		if !slices.Contains(game.State.Snake, cord) {
			game.State.Food = cord
			return
		}
	}
}

// nextInt returns a uniform int in [lo, hi] inclusive.
func nextInt(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

func (game *Game) log(verbosity, action string, detail any) {
	if game.Lgr != nil {
		game.Lgr.Log(verbosity, action, detail)
	}
}

// newEventLogger opens the opt-in event log. Failure to open is non-fatal,
// the game just runs unlogged.
func newEventLogger(path string) *logger.Logger {
	lgr, err := logger.New(path)
	if err != nil {
		return nil
	}

	lgr.UseSeperators = false
	lgr.CharCountPerPart = 16

	return lgr
}

// Run wires the terminal, drives the loop and restores everything on the way
// out. Returns nil on a normal quit.
func Run(cfg Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotATerminal
	}

	game := New(cfg)

	if cfg.LogFile != "" {
		game.Lgr = newEventLogger(cfg.LogFile)
	}

	trm := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")

	scr, err := screen.New(cfg.Width, cfg.Height, trm)
	if err != nil {
		return err
	}
	defer scr.Close()

	in := input.New()
	defer in.Close()

	game.Screen = scr
	game.Input = in

	game.log("medium", "Starting", strconv.Itoa(cfg.Width)+"x"+strconv.Itoa(cfg.Height))
	game.loop()

	return nil
}

// loop polls input every frame, steps on the tick interval and redraws
// unconditionally, so key latency is one frame rather than one tick.
func (game *Game) loop() {
	last := time.Now()

	for !game.quit {
		if key := game.Input.Poll(); key != input.None {
			game.HandleKey(key)
		}

		if time.Since(last) >= time.Duration(game.State.TickMs)*time.Millisecond {
			game.Step()
			last = time.Now()
		}

		game.Screen.Draw(game.Frame())
		time.Sleep(frameDelay)
	}
}
