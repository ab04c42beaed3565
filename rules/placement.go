package rules

import (
	"errors"

	"github.com/battlesnakeio/torus/board"
)

// ErrBoardFull is returned when no free cell is left for the apple.
var ErrBoardFull = errors.New("rules: no unoccupied cell left on the board")

// unoccupiedPoints lists every cell of b that is not in excluded, row-major.
func unoccupiedPoints(b board.Board, excluded []board.Point) []board.Point {
	occupied := make(map[board.Point]struct{}, len(excluded))
	for _, p := range excluded {
		occupied[p] = struct{}{}
	}

	candidates := make([]board.Point, 0, b.CellCount())
	for _, p := range b.Cells() {
		if _, ok := occupied[p]; !ok {
			candidates = append(candidates, p)
		}
	}
	return candidates
}
