package rules

import (
	"github.com/battlesnakeio/torus/board"
)

// Snake is the player's snake. Positions are ordered head first.
type Snake struct {
	board     board.Board
	policy    CollisionPolicy
	positions []board.Point
	length    int
	direction board.Direction
	next      *board.Direction
	style     Style
}

// NewSnake returns a snake of length 1 at the board center heading right.
func NewSnake(b board.Board, policy CollisionPolicy) *Snake {
	if policy == "" {
		policy = DefaultCollisionPolicy
	}
	s := &Snake{
		board:  b,
		policy: policy,
		style:  snakeStyle,
	}
	s.reset()
	return s
}

func (s *Snake) reset() {
	s.positions = []board.Point{s.board.Center()}
	s.length = 1
	s.direction = board.Right
	s.next = nil
}

// SetNextDirection buffers d for the next Move. It is ignored when d would
// reverse the snake onto its own neck; the last accepted call before a Move wins.
func (s *Snake) SetNextDirection(d board.Direction) bool {
	if !d.Valid() || d == s.direction.Opposite() {
		return false
	}
	s.next = &d
	return true
}

// Move advances the snake one cell and reports whether it had to reset.
func (s *Snake) Move() MoveResult {
	if s.next != nil {
		s.direction = *s.next
		s.next = nil
	}

	head := s.board.Step(s.Head(), s.direction)
	if board.Contains(s.obstacles(), head) {
		s.reset()
		return CollidedAndReset
	}

	s.positions = append([]board.Point{head}, s.positions...)
	if len(s.positions) > s.length {
		s.positions = s.positions[:s.length]
	}
	return Advanced
}

// obstacles returns the cells the new head must not land on. The tail only
// vacates when the body is already at its target length.
func (s *Snake) obstacles() []board.Point {
	if s.policy == TailVacates && len(s.positions) >= s.length {
		return s.positions[:len(s.positions)-1]
	}
	return s.positions
}

// Grow raises the target length by one; the body catches up on later moves.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the first point in the body
func (s *Snake) Head() board.Point {
	return s.positions[0]
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []board.Point {
	out := make([]board.Point, len(s.positions))
	copy(out, s.positions)
	return out
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p board.Point) bool {
	return board.Contains(s.positions, p)
}

// Len is the current number of segments.
func (s *Snake) Len() int { return len(s.positions) }

// Length is the target length.
func (s *Snake) Length() int { return s.length }

// Direction is the direction used by the last move.
func (s *Snake) Direction() board.Direction { return s.direction }

// NextDirection returns the buffered direction, if any.
func (s *Snake) NextDirection() (board.Direction, bool) {
	if s.next == nil {
		return board.Direction{}, false
	}
	return *s.next, true
}

// Policy returns the collision policy the snake was built with.
func (s *Snake) Policy() CollisionPolicy { return s.policy }

// Draw paints every segment.
func (s *Snake) Draw(r Renderer) {
	for _, p := range s.positions {
		r.DrawCell(p, s.board.CellSize, s.style)
	}
}
