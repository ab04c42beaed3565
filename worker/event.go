package worker

import "github.com/battlesnakeio/torus/board"

// EventType is the kind of input event.
type EventType int

const (
	// EventDirection asks the snake to turn.
	EventDirection EventType = iota
	// EventQuit stops the game.
	EventQuit
)

// Event is a single input from the player.
type Event struct {
	Type      EventType
	Direction board.Direction
}

// Turn returns a direction event.
func Turn(d board.Direction) Event {
	return Event{Type: EventDirection, Direction: d}
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Type: EventQuit}
}
