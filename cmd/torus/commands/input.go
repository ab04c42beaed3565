package commands

import (
	"github.com/battlesnakeio/torus/board"
	"github.com/battlesnakeio/torus/worker"
	termbox "github.com/nsf/termbox-go"
)

// keyEvent translates a termbox key event into a worker event.
func keyEvent(ev termbox.Event) (worker.Event, bool) {
	if ev.Type != termbox.EventKey {
		return worker.Event{}, false
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return worker.Turn(board.Up), true
	case termbox.KeyArrowDown:
		return worker.Turn(board.Down), true
	case termbox.KeyArrowLeft:
		return worker.Turn(board.Left), true
	case termbox.KeyArrowRight:
		return worker.Turn(board.Right), true
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return worker.Quit(), true
	}
	switch ev.Ch {
	case 'w', 'W':
		return worker.Turn(board.Up), true
	case 's', 'S':
		return worker.Turn(board.Down), true
	case 'a', 'A':
		return worker.Turn(board.Left), true
	case 'd', 'D':
		return worker.Turn(board.Right), true
	case 'q', 'Q':
		return worker.Quit(), true
	}
	return worker.Event{}, false
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// playerInput feeds translated key events to the worker. The buffer lets a
// player queue several keys within one tick.
func playerInput(events <-chan termbox.Event) <-chan worker.Event {
	out := make(chan worker.Event, 16)
	go func() {
		defer close(out)
		for e := range events {
			if ev, ok := keyEvent(e); ok {
				out <- ev
			}
		}
	}()
	return out
}
