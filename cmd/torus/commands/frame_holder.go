package commands

import (
	"sync"

	"github.com/battlesnakeio/torus/rules"
)

type frameHolder struct {
	sync.RWMutex
	frames []rules.Frame
	ffc    chan rules.Frame
	once   sync.Once
}

func newFrameHolder() *frameHolder {
	return &frameHolder{ffc: make(chan rules.Frame, 1)}
}

func (fh *frameHolder) append(frame rules.Frame) {
	fh.Lock()
	defer fh.Unlock()

	if len(fh.frames) == 0 {
		fh.once.Do(func() {
			fh.ffc <- frame
			close(fh.ffc)
		})
	}

	fh.frames = append(fh.frames, frame)
}

func (fh *frameHolder) get(index int) (rules.Frame, bool) {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return rules.Frame{}, false
	}

	return fh.frames[index], true
}

func (fh *frameHolder) initialFrame() <-chan rules.Frame {
	return fh.ffc
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
