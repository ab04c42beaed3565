// Package recorder writes runs to disk as JSON lines and reads them back for
// replay. The first line of a recording is the RunInfo, every following line
// is one rules.Frame.
package recorder

import (
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/battlesnakeio/torus/board"
	"github.com/battlesnakeio/torus/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Extension is the file extension of recordings.
const Extension = ".jsonl"

// RunInfo describes a recorded run.
type RunInfo struct {
	ID        string                `json:"id"`
	Board     board.Board           `json:"board"`
	Policy    rules.CollisionPolicy `json:"collision_policy"`
	TickRate  float64               `json:"tick_rate"`
	StartedAt time.Time             `json:"started_at"`
}

// NewRunInfo returns run info with a fresh id.
func NewRunInfo(b board.Board, policy rules.CollisionPolicy, tickRate float64) RunInfo {
	return RunInfo{
		ID:        uuid.NewV4().String(),
		Board:     b,
		Policy:    policy,
		TickRate:  tickRate,
		StartedAt: time.Now().UTC(),
	}
}

// DefaultDir is where recordings go when no directory is given.
func DefaultDir() string {
	return filepath.Join(homeDir(), ".torus", "runs")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// Path returns the recording path for run id inside dir.
func Path(dir, id string) string {
	return filepath.Join(dir, id+Extension)
}

// Recorder appends frames of a single run to its file.
type Recorder struct {
	lock   sync.Mutex
	w      writer
	path   string
	info   RunInfo
	frames int
}

// Create starts a new recording in dir. It fails if a recording for the
// same run id already exists.
func Create(dir string, info RunInfo) (*Recorder, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0775); err != nil {
		return nil, errors.Wrapf(err, "recorder: creating %s", dir)
	}

	path := Path(dir, info.ID)
	w, err := openFileWriter(path)
	if err != nil {
		return nil, errors.Wrapf(err, "recorder: opening %s", path)
	}
	if err := writeLine(w, &info); err != nil {
		w.Close()
		return nil, errors.Wrap(err, "recorder: writing run info")
	}

	log.WithField("path", path).
		WithField("run", info.ID).
		Info("recording run")
	return &Recorder{
		w:    w,
		path: path,
		info: info,
	}, nil
}

// Path is the file the recorder writes to.
func (r *Recorder) Path() string { return r.path }

// Info returns the run info written at the top of the recording.
func (r *Recorder) Info() RunInfo { return r.info }

// WriteFrame appends a frame.
func (r *Recorder) WriteFrame(f rules.Frame) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := writeLine(r.w, &f); err != nil {
		return errors.Wrapf(err, "recorder: writing turn %d", f.Turn)
	}
	r.frames++
	return nil
}

// Close closes the underlying file.
func (r *Recorder) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	log.WithField("path", r.path).
		WithField("frames", r.frames).
		Info("recording closed")
	return errors.Wrap(r.w.Close(), "recorder: closing")
}
