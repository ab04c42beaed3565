package recorder

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/battlesnakeio/torus/rules"
	"github.com/pkg/errors"
)

// Archive is a fully loaded recording.
type Archive struct {
	Info   RunInfo
	Frames []rules.Frame
}

// Last returns the final recorded frame.
func (a Archive) Last() (rules.Frame, bool) {
	if len(a.Frames) == 0 {
		return rules.Frame{}, false
	}
	return a.Frames[len(a.Frames)-1], true
}

// readLine decodes the next non-empty line into out. It returns false once
// the input is exhausted without decoding anything.
func readLine(r *bufio.Reader, out interface{}) (bool, error) {
	for {
		line, err := r.ReadBytes('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return false, err
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if eof {
				return false, nil
			}
			continue
		}
		if err := json.Unmarshal(line, out); err != nil {
			return false, err
		}
		return true, nil
	}
}

// Decode reads a recording from r.
func Decode(r io.Reader) (Archive, error) {
	reader := bufio.NewReader(r)

	info := RunInfo{}
	ok, err := readLine(reader, &info)
	if err != nil {
		return Archive{}, errors.Wrap(err, "recorder: reading run info")
	}
	if !ok {
		return Archive{}, errors.New("recorder: empty recording")
	}

	frames := []rules.Frame{}
	for line := 2; ; line++ {
		f := rules.Frame{}
		ok, err := readLine(reader, &f)
		if err != nil {
			return Archive{}, errors.Wrapf(err, "recorder: reading frame on line %d", line)
		}
		if !ok {
			break
		}
		frames = append(frames, f)
	}

	return Archive{
		Info:   info,
		Frames: frames,
	}, nil
}

// Read loads the recording at path.
func Read(path string) (Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return Archive{}, errors.Wrapf(err, "recorder: opening %s", path)
	}
	defer f.Close()

	return Decode(f)
}
