package rules

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/torus/board"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Frame is the observable state of a game after a tick.
type Frame struct {
	Turn      int64           `json:"turn"`
	Snake     []board.Point   `json:"snake"`
	Length    int             `json:"length"`
	Direction board.Direction `json:"direction"`
	Apple     board.Point     `json:"apple"`
	Result    MoveResult      `json:"result"`
	AteApple  bool            `json:"ate_apple"`
}

// Head returns the first point of the snake, or false for an empty frame.
func (f Frame) Head() (board.Point, bool) {
	if len(f.Snake) == 0 {
		return board.Point{}, false
	}
	return f.Snake[0], true
}

// Render paints a recorded frame the same way Game.Draw paints a live game.
func (f Frame) Render(r Renderer, cellSize int) {
	for _, p := range f.Snake {
		r.DrawCell(p, cellSize, snakeStyle)
	}
	r.DrawCell(f.Apple, cellSize, appleStyle)
}

// Options tune a new game.
type Options struct {
	Policy CollisionPolicy
	// Rand drives apple placement. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// Game ties one snake and one apple to a board and runs the per-tick rules.
type Game struct {
	board board.Board
	snake *Snake
	apple *Apple
	turn  int64
	last  Frame
}

// NewGame creates a game with a fresh snake at the center and an apple
// somewhere else.
func NewGame(b board.Board, opts Options) (*Game, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	snake := NewSnake(b, opts.Policy)
	apple, err := NewApple(b, rng, snake.Positions())
	if err != nil {
		return nil, errors.Wrap(err, "rules: placing first apple")
	}

	g := &Game{
		board: b,
		snake: snake,
		apple: apple,
	}
	g.last = g.frame(Advanced, false)
	return g, nil
}

// Board returns the board the game is played on.
func (g *Game) Board() board.Board { return g.board }

// Snake returns the game's snake.
func (g *Game) Snake() *Snake { return g.snake }

// Apple returns the game's apple.
func (g *Game) Apple() *Apple { return g.apple }

// Turn is the number of ticks run so far.
func (g *Game) Turn() int64 { return g.turn }

// SetNextDirection forwards a steering request to the snake.
func (g *Game) SetNextDirection(d board.Direction) bool {
	accepted := g.snake.SetNextDirection(d)
	if !accepted {
		log.WithFields(log.Fields{
			"Turn":      g.turn,
			"Requested": d,
			"Direction": g.snake.Direction(),
		}).Debug("direction rejected")
	}
	return accepted
}

// Tick runs the game one tick: move the snake, then grow it and relocate the
// apple if the head landed on the apple.
func (g *Game) Tick() (Frame, error) {
	g.turn++
	result := g.snake.Move()
	if result == CollidedAndReset {
		log.WithFields(log.Fields{
			"Turn": g.turn,
		}).Info("snake collided with itself, reset")
	}

	ate := false
	if g.snake.Head().Equal(g.apple.Position()) {
		g.snake.Grow()
		if err := g.apple.RandomizePosition(g.snake.Positions()); err != nil {
			g.last = g.frame(result, false)
			return g.last, errors.Wrapf(err, "rules: relocating apple on turn %d", g.turn)
		}
		ate = true
		log.WithFields(log.Fields{
			"Turn":   g.turn,
			"Length": g.snake.Length(),
			"Apple":  g.apple.Position(),
		}).Info("snake ate")
	}

	g.last = g.frame(result, ate)
	log.WithFields(log.Fields{
		"Turn":   g.turn,
		"Head":   g.snake.Head(),
		"Result": result,
	}).Debug("tick")
	return g.last, nil
}

// Frame returns the frame produced by the last tick, or the initial state.
func (g *Game) Frame() Frame {
	return g.last
}

func (g *Game) frame(result MoveResult, ate bool) Frame {
	return Frame{
		Turn:      g.turn,
		Snake:     g.snake.Positions(),
		Length:    g.snake.Length(),
		Direction: g.snake.Direction(),
		Apple:     g.apple.Position(),
		Result:    result,
		AteApple:  ate,
	}
}

// Draw paints the snake, then the apple on top.
func (g *Game) Draw(r Renderer) {
	g.snake.Draw(r)
	g.apple.Draw(r)
}
