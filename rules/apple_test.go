package rules

import (
	"testing"

	"github.com/battlesnakeio/torus/board"
	"github.com/stretchr/testify/require"
)

func TestRandomizePositionAvoidsExcluded(t *testing.T) {
	b := board.Default()
	excluded := []board.Point{}
	for i, c := range b.Cells() {
		if i%2 == 0 {
			excluded = append(excluded, c)
		}
	}

	a, err := NewApple(b, seeded(), excluded)
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		require.NoError(t, a.RandomizePosition(excluded))
		require.True(t, b.Contains(a.Position()), "apple off grid: %s", a.Position())
		require.False(t, board.Contains(excluded, a.Position()), "apple on excluded cell: %s", a.Position())
	}
}

func TestRandomizePositionSingleFreeCell(t *testing.T) {
	b := board.Board{CellSize: 20, FieldWidth: 60, FieldHeight: 40}
	free := pt(40, 20)
	excluded := []board.Point{}
	for _, c := range b.Cells() {
		if !c.Equal(free) {
			excluded = append(excluded, c)
		}
	}

	a, err := NewApple(b, seeded(), excluded)
	require.NoError(t, err)
	require.Equal(t, free, a.Position())
}

func TestRandomizePositionBoardFull(t *testing.T) {
	b := board.Board{CellSize: 20, FieldWidth: 40, FieldHeight: 20}
	a, err := NewApple(b, seeded(), []board.Point{pt(0, 0)})
	require.NoError(t, err)
	require.Equal(t, pt(20, 0), a.Position())

	err = a.RandomizePosition(b.Cells())
	require.Equal(t, ErrBoardFull, err)
	require.Equal(t, pt(20, 0), a.Position())

	_, err = NewApple(b, seeded(), b.Cells())
	require.Equal(t, ErrBoardFull, err)
}

func TestRandomizePositionReachesEveryFreeCell(t *testing.T) {
	b := board.Board{CellSize: 20, FieldWidth: 60, FieldHeight: 40}
	excluded := []board.Point{pt(0, 0), pt(20, 20)}
	a, err := NewApple(b, seeded(), excluded)
	require.NoError(t, err)

	seen := map[board.Point]bool{}
	for i := 0; i < 400; i++ {
		require.NoError(t, a.RandomizePosition(excluded))
		seen[a.Position()] = true
	}
	require.Len(t, seen, b.CellCount()-len(excluded))
}

func TestAppleDraw(t *testing.T) {
	b := board.Default()
	a, err := NewApple(b, seeded(), nil)
	require.NoError(t, err)

	r := &recordingRenderer{}
	a.Draw(r)
	require.Equal(t, []drawCall{{Point: a.Position(), Size: 20, Style: appleStyle}}, r.calls)
}

func TestUnoccupiedPoints(t *testing.T) {
	b := board.Board{CellSize: 10, FieldWidth: 20, FieldHeight: 20}
	free := unoccupiedPoints(b, []board.Point{pt(0, 0), pt(10, 10), pt(10, 10)})
	require.Equal(t, []board.Point{pt(10, 0), pt(0, 10)}, free)
}
