package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultGeometry(t *testing.T) {
	b := Default()
	require.NoError(t, b.Validate())
	require.Equal(t, 32, b.GridWidth())
	require.Equal(t, 24, b.GridHeight())
	require.Equal(t, 768, b.CellCount())
	require.Equal(t, Point{X: 320, Y: 240}, b.Center())
}

func TestValidate(t *testing.T) {
	bad := []Board{
		{CellSize: 0, FieldWidth: 640, FieldHeight: 480},
		{CellSize: 20, FieldWidth: -640, FieldHeight: 480},
		{CellSize: 20, FieldWidth: 650, FieldHeight: 480},
		{CellSize: 20, FieldWidth: 640, FieldHeight: 470},
	}
	for _, b := range bad {
		err := b.Validate()
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidGeometry))
	}
}

func TestCenterSnapsToGrid(t *testing.T) {
	b := Board{CellSize: 20, FieldWidth: 100, FieldHeight: 60}
	require.Equal(t, Point{X: 40, Y: 20}, b.Center())
	require.True(t, b.Contains(b.Center()))
}

func TestStepWrapsAroundEdges(t *testing.T) {
	b := Default()
	require.Equal(t, Point{X: 0, Y: 100}, b.Step(Point{X: 620, Y: 100}, Right))
	require.Equal(t, Point{X: 620, Y: 100}, b.Step(Point{X: 0, Y: 100}, Left))
	require.Equal(t, Point{X: 100, Y: 460}, b.Step(Point{X: 100, Y: 0}, Up))
	require.Equal(t, Point{X: 100, Y: 0}, b.Step(Point{X: 100, Y: 460}, Down))
	require.Equal(t, Point{X: 120, Y: 100}, b.Step(Point{X: 100, Y: 100}, Right))
}

func TestStepAlwaysInBounds(t *testing.T) {
	b := Board{CellSize: 20, FieldWidth: 100, FieldHeight: 60}
	for _, c := range b.Cells() {
		for _, d := range Directions {
			next := b.Step(c, d)
			require.True(t, b.Contains(next), "%s stepping %s left the board: %s", c, d, next)
		}
	}
}

func TestWrapNegative(t *testing.T) {
	b := Default()
	require.Equal(t, Point{X: 600, Y: 440}, b.Wrap(Point{X: -40, Y: -40}))
	require.Equal(t, Point{X: 40, Y: 0}, b.Wrap(Point{X: 680, Y: 960}))
}

func TestContains(t *testing.T) {
	b := Default()
	require.True(t, b.Contains(Point{X: 0, Y: 0}))
	require.True(t, b.Contains(Point{X: 620, Y: 460}))
	require.False(t, b.Contains(Point{X: 640, Y: 0}))
	require.False(t, b.Contains(Point{X: 0, Y: -20}))
	require.False(t, b.Contains(Point{X: 10, Y: 0}))
}

func TestCells(t *testing.T) {
	b := Board{CellSize: 10, FieldWidth: 30, FieldHeight: 20}
	require.Equal(t, []Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0},
		{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 20, Y: 10},
	}, b.Cells())
}
