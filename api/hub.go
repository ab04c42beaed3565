package api

import (
	"sync"

	"github.com/battlesnakeio/torus/recorder"
	"github.com/battlesnakeio/torus/rules"
	log "github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

// Hub fans frames out to spectators. It keeps the latest frame so new
// spectators start from the current state.
type Hub struct {
	lock   sync.RWMutex
	info   recorder.RunInfo
	latest *rules.Frame
	subs   map[chan rules.Frame]struct{}
}

// NewHub returns a hub for the run described by info.
func NewHub(info recorder.RunInfo) *Hub {
	return &Hub{
		info: info,
		subs: map[chan rules.Frame]struct{}{},
	}
}

// Info returns the run the hub is serving.
func (h *Hub) Info() recorder.RunInfo { return h.info }

// WriteFrame stores f as the latest frame and offers it to every
// subscriber. Subscribers that are not keeping up miss the frame.
func (h *Hub) WriteFrame(f rules.Frame) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.latest = &f
	for ch := range h.subs {
		select {
		case ch <- f:
		default:
			log.WithField("turn", f.Turn).Debug("spectator too slow, frame dropped")
		}
	}
	return nil
}

// Latest returns the most recent frame.
func (h *Hub) Latest() (rules.Frame, bool) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	if h.latest == nil {
		return rules.Frame{}, false
	}
	return *h.latest, true
}

// Subscribe registers a new spectator. The channel starts with the latest
// frame, if any. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe() (<-chan rules.Frame, func()) {
	h.lock.Lock()
	defer h.lock.Unlock()

	ch := make(chan rules.Frame, subscriberBuffer)
	if h.latest != nil {
		ch <- *h.latest
	}
	h.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.lock.Lock()
			defer h.lock.Unlock()
			delete(h.subs, ch)
			close(ch)
		})
	}
}

// Subscribers is the number of connected spectators.
func (h *Hub) Subscribers() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.subs)
}
