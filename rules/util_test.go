package rules

import (
	"math/rand"

	"github.com/battlesnakeio/torus/board"
)

type drawCall struct {
	Point board.Point
	Size  int
	Style Style
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawCell(p board.Point, size int, style Style) {
	r.calls = append(r.calls, drawCall{Point: p, Size: size, Style: style})
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// snakeWith builds a snake in an arbitrary mid-game state.
func snakeWith(policy CollisionPolicy, dir board.Direction, length int, body ...board.Point) *Snake {
	s := NewSnake(board.Default(), policy)
	s.positions = body
	s.length = length
	s.direction = dir
	return s
}

func pt(x, y int) board.Point {
	return board.Point{X: x, Y: y}
}
