// Package worker runs a game at a fixed tick rate. Each tick it drains the
// pending input, advances the game, redraws the screen and hands the frame to
// every sink.
package worker

import (
	"context"

	"github.com/battlesnakeio/torus/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Screen is the drawing surface the worker renders to after every tick.
type Screen interface {
	rules.Renderer
	Clear() error
	Flush() error
}

// FrameSink receives every frame the game produces.
type FrameSink interface {
	WriteFrame(frame rules.Frame) error
}

// Worker drives a single game.
type Worker struct {
	Game     *rules.Game
	TickRate rate.Limit
	Input    <-chan Event
	Screen   Screen
	Sinks    []FrameSink
	// MaxTurns stops the game after that many ticks; zero runs until quit.
	MaxTurns int64
}

// Run ticks the game until a quit event arrives, the input closes, MaxTurns
// is reached or ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(w.TickRate, 1)
	if err := w.render(); err != nil {
		return err
	}

	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "worker: waiting for tick")
		}

		if w.drainInput() {
			log.WithField("turn", w.Game.Turn()).Info("quit requested")
			return nil
		}

		frame, err := w.Game.Tick()
		if err != nil {
			log.WithError(err).
				WithField("turn", frame.Turn).
				Error("ending game due to fatal error")
			return err
		}
		observe(frame)

		if err := w.render(); err != nil {
			return err
		}
		if err := w.publish(frame); err != nil {
			return err
		}

		if w.MaxTurns > 0 && frame.Turn >= w.MaxTurns {
			log.WithField("turn", frame.Turn).Info("turn limit reached")
			return nil
		}
	}
}

// drainInput applies every pending event without blocking. It reports true
// when the game should stop.
func (w *Worker) drainInput() bool {
	for {
		select {
		case ev, ok := <-w.Input:
			if !ok {
				return true
			}
			switch ev.Type {
			case EventQuit:
				return true
			case EventDirection:
				w.Game.SetNextDirection(ev.Direction)
			}
		default:
			return false
		}
	}
}

func (w *Worker) render() error {
	if w.Screen == nil {
		return nil
	}
	if err := w.Screen.Clear(); err != nil {
		return errors.Wrap(err, "worker: clearing screen")
	}
	w.Game.Draw(w.Screen)
	return errors.Wrap(w.Screen.Flush(), "worker: flushing screen")
}

func (w *Worker) publish(frame rules.Frame) error {
	for _, s := range w.Sinks {
		if err := s.WriteFrame(frame); err != nil {
			return errors.Wrapf(err, "worker: publishing turn %d", frame.Turn)
		}
	}
	return nil
}
