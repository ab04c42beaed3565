package recorder

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/battlesnakeio/torus/board"
	"github.com/battlesnakeio/torus/rules"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "torus-recorder")
	require.NoError(t, err)
	return dir
}

var frames = []rules.Frame{
	{
		Turn:      1,
		Snake:     []board.Point{{X: 340, Y: 240}},
		Length:    1,
		Direction: board.Right,
		Apple:     board.Point{X: 360, Y: 240},
		Result:    rules.Advanced,
	},
	{
		Turn:      2,
		Snake:     []board.Point{{X: 360, Y: 240}},
		Length:    2,
		Direction: board.Right,
		Apple:     board.Point{X: 0, Y: 20},
		Result:    rules.Advanced,
		AteApple:  true,
	},
	{
		Turn:      3,
		Snake:     []board.Point{{X: 320, Y: 240}},
		Length:    1,
		Direction: board.Right,
		Apple:     board.Point{X: 0, Y: 20},
		Result:    rules.CollidedAndReset,
	},
}

func TestRecordAndRead(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	info := NewRunInfo(board.Default(), rules.TailBlocks, 20)
	r, err := Create(dir, info)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, info.ID+".jsonl"), r.Path())

	for _, f := range frames {
		require.NoError(t, r.WriteFrame(f))
	}
	require.NoError(t, r.Close())

	archive, err := Read(r.Path())
	require.NoError(t, err)
	require.Equal(t, info.ID, archive.Info.ID)
	require.Equal(t, board.Default(), archive.Info.Board)
	require.Equal(t, rules.TailBlocks, archive.Info.Policy)
	require.Equal(t, float64(20), archive.Info.TickRate)
	require.True(t, info.StartedAt.Equal(archive.Info.StartedAt))
	require.Equal(t, frames, archive.Frames)

	last, ok := archive.Last()
	require.True(t, ok)
	require.Equal(t, int64(3), last.Turn)
}

func TestCreateRefusesExistingRun(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	info := NewRunInfo(board.Default(), rules.TailVacates, 20)
	r, err := Create(dir, info)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = Create(dir, info)
	require.Error(t, err)
}

func TestNewRunInfoUniqueIDs(t *testing.T) {
	a := NewRunInfo(board.Default(), rules.TailVacates, 20)
	b := NewRunInfo(board.Default(), rules.TailVacates, 20)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestDecodeNoFrames(t *testing.T) {
	archive, err := Decode(strings.NewReader(`{"id":"abc","board":{"cell_size":20,"field_width":640,"field_height":480}}` + "\n"))
	require.NoError(t, err)
	require.Equal(t, "abc", archive.Info.ID)
	require.Empty(t, archive.Frames)
	_, ok := archive.Last()
	require.False(t, ok)
}

func TestDecodeWithoutTrailingNewline(t *testing.T) {
	archive, err := Decode(strings.NewReader(`{"id":"abc"}` + "\n" + `{"turn":1,"direction":"up","result":"advanced"}`))
	require.NoError(t, err)
	require.Len(t, archive.Frames, 1)
	require.Equal(t, board.Up, archive.Frames[0].Direction)
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
}

func TestDecodeMalformedFrame(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id":"abc"}` + "\n" + `{"turn":1}` + "\n" + `{"turn":` + "\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

func TestDecodeBadDirection(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id":"abc"}` + "\n" + `{"turn":1,"direction":"north"}` + "\n"))
	require.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(os.TempDir(), "torus-does-not-exist.jsonl"))
	require.Error(t, err)
}
