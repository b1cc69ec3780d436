package game

import "strconv"

const (
	cellEmpty int8 = iota
	cellWall
	cellFood
	cellBody
	cellHead
)

var charMap = map[int8]byte{
	cellEmpty: ' ',
	cellWall:  '#',
	cellFood:  '*',
	cellBody:  'o',
	cellHead:  'O',
}

// Frame renders the whole board into fresh per-row byte slices: border on
// all four edges, then food, then the body so the head wins any overlap.
func (game *Game) Frame() [][]byte {
	w, h := game.Config.Width, game.Config.Height

	cells := make([][]int8, h)
	for y := range cells {
		cells[y] = make([]int8, w)
	}
	for x := range w {
		cells[0][x] = cellWall
		cells[h-1][x] = cellWall
	}
	for y := range h {
		cells[y][0] = cellWall
		cells[y][w-1] = cellWall
	}

	cells[game.State.Food.Y][game.State.Food.X] = cellFood
	for i, cord := range game.State.Snake {
		if i == 0 {
			cells[cord.Y][cord.X] = cellHead
		} else {
			cells[cord.Y][cord.X] = cellBody
		}
	}

	lines := make([][]byte, h)
	for y, row := range cells {
		line := make([]byte, w)
		for x, cell := range row {
			line[x] = charMap[cell]
		}
		lines[y] = line
	}

	overlay(lines[0], 2, "Score: "+strconv.Itoa(game.State.Score)+"   WASD=move  Q=quit")
	if game.State.GameOver {
		msg := "GAME OVER  (R=restart, Q=quit)"
		overlay(lines[h/2], max(1, (w-len(msg))/2), msg)
	}

	return lines
}

// overlay writes text into a line, clamped one cell short of the right wall.
func overlay(line []byte, start int, text string) {
	for i := 0; i < len(text) && start+i < len(line)-1; i++ {
		line[start+i] = text[i]
	}
}
