package rules

import (
	"math/rand"

	"github.com/battlesnakeio/torus/board"
)

// Apple is the single piece of food on the board.
type Apple struct {
	board    board.Board
	position board.Point
	rng      *rand.Rand
	style    Style
}

// NewApple places an apple on a random cell that is not in excluded.
func NewApple(b board.Board, rng *rand.Rand, excluded []board.Point) (*Apple, error) {
	a := &Apple{
		board: b,
		rng:   rng,
		style: appleStyle,
	}
	if err := a.RandomizePosition(excluded); err != nil {
		return nil, err
	}
	return a, nil
}

// RandomizePosition moves the apple to a uniformly random cell outside
// excluded. The position is left unchanged and ErrBoardFull returned when
// every cell is excluded.
func (a *Apple) RandomizePosition(excluded []board.Point) error {
	free := unoccupiedPoints(a.board, excluded)
	if len(free) == 0 {
		return ErrBoardFull
	}
	a.position = free[a.rng.Intn(len(free))]
	return nil
}

// Position returns the apple's cell.
func (a *Apple) Position() board.Point { return a.position }

// Draw paints the apple's cell.
func (a *Apple) Draw(r Renderer) {
	r.DrawCell(a.position, a.board.CellSize, a.style)
}
