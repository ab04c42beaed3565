package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/battlesnakeio/torus/recorder"
	"github.com/battlesnakeio/torus/rules"
	"github.com/gorilla/websocket"
	termbox "github.com/nsf/termbox-go"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	replayFile  string
	spectateURL string
	replayDelay = 50 * time.Millisecond
)

func init() {
	replayCmd.Flags().StringVarP(&replayFile, "file", "f", "", "recording to replay")
	replayCmd.Flags().StringVarP(&spectateURL, "url", "u", "", "spectator api of a running game to watch, e.g. http://localhost:3005")
	replayCmd.Flags().DurationVar(&replayDelay, "delay", replayDelay, "time between frames")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded run, or watches a running one",
	Args: func(c *cobra.Command, args []string) error {
		if (replayFile == "") == (spectateURL == "") {
			return errors.New("exactly one of --file or --url is required")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(true); err != nil {
			return err
		}
		return replayGame()
	},
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, rules.Frame, bool) {
	frameIndex++
	if frameIndex >= frames.count() {
		return frameIndex, rules.Frame{}, true
	}
	frame, _ := frames.get(frameIndex)
	return frameIndex, frame, false
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, rules.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	frame, _ := frames.get(frameIndex)
	return frameIndex, frame
}

func loadRecording(path string) (recorder.RunInfo, *frameHolder, error) {
	archive, err := recorder.Read(path)
	if err != nil {
		return recorder.RunInfo{}, nil, err
	}
	frames := newFrameHolder()
	for _, f := range archive.Frames {
		frames.append(f)
	}
	return archive.Info, frames, nil
}

type spectatorStatus struct {
	Run recorder.RunInfo `json:"run"`
}

func loadLiveGame(apiAddr string) (recorder.RunInfo, *frameHolder, error) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/status", apiAddr))
	if err != nil {
		return recorder.RunInfo{}, nil, pkgerrors.Wrap(err, "getting status")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return recorder.RunInfo{}, nil, fmt.Errorf("getting status: %s", resp.Status)
	}
	s := &spectatorStatus{}
	if err := json.NewDecoder(resp.Body).Decode(s); err != nil {
		return recorder.RunInfo{}, nil, pkgerrors.Wrap(err, "decoding status")
	}

	frames := newFrameHolder()

	host := strings.TrimPrefix(strings.TrimPrefix(apiAddr, "http://"), "https://")
	u := url.URL{Scheme: "ws", Host: host, Path: "/socket"}
	log.WithField("url", u.String()).Info("connecting to spectator api")

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return recorder.RunInfo{}, nil, pkgerrors.Wrap(err, "dial")
	}

	go func() {
		defer c.Close()

		for {
			frame := rules.Frame{}
			if err := c.ReadJSON(&frame); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.WithError(err).Warn("spectator stream ended")
				}
				return
			}
			frames.append(frame)
		}
	}()

	return s.Run, frames, nil
}

func replayGame() error {
	var (
		info   recorder.RunInfo
		frames *frameHolder
		err    error
	)
	if replayFile != "" {
		info, frames, err = loadRecording(replayFile)
	} else {
		info, frames, err = loadLiveGame(spectateURL)
	}
	if err != nil {
		return err
	}

	currentFrame, err := getInitialFrame(frames)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return pkgerrors.Wrap(err, "starting terminal")
	}
	termbox.SetOutputMode(termbox.Output256)
	defer termbox.Close()

	screen := newTermScreen(info.Board, func() string {
		return fmt.Sprintf("Replay %s - Turn %d - Length %d", shortID(info.ID), currentFrame.Turn, currentFrame.Length)
	})
	render := func(f rules.Frame) error {
		currentFrame = f
		if err := screen.Clear(); err != nil {
			return err
		}
		f.Render(screen, info.Board.CellSize)
		return screen.Flush()
	}

	eventQueue := setupEventQueue()
	cycle := time.NewTicker(replayDelay)
	defer cycle.Stop()
	frameIndex := 0
	paused := false
	done := false

	for !done {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch {
			case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
				return nil
			case ev.Key == termbox.KeySpace:
				paused = !paused
			case ev.Key == termbox.KeyArrowLeft:
				paused = true
				var f rules.Frame
				frameIndex, f = moveFrameBackwards(frameIndex, frames)
				if err = render(f); err != nil {
					return err
				}
			case ev.Key == termbox.KeyArrowRight:
				paused = true
				var f rules.Frame
				frameIndex, f, done = moveFrameForwards(frameIndex, frames)
				if !done {
					if err = render(f); err != nil {
						return err
					}
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			if err = render(currentFrame); err != nil {
				return err
			}
			var f rules.Frame
			next, f, end := moveFrameForwards(frameIndex, frames)
			if end {
				// A live game may still be producing frames.
				if spectateURL != "" {
					continue
				}
				done = true
				continue
			}
			frameIndex, currentFrame = next, f
		}
	}

	tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
	if err = termbox.Flush(); err != nil {
		return err
	}
	<-eventQueue
	return nil
}

func getInitialFrame(frames *frameHolder) (rules.Frame, error) {
	select {
	case f := <-frames.initialFrame():
		return f, nil
	case <-time.After(2 * time.Second):
		return rules.Frame{}, errors.New("unable to find initial frame for game")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
