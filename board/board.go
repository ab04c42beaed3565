package board

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned by Validate for boards that cannot be played on.
var ErrInvalidGeometry = errors.New("board: invalid geometry")

// Default geometry, in pixels.
const (
	DefaultCellSize    = 20
	DefaultFieldWidth  = 640
	DefaultFieldHeight = 480
)

// Board describes the playing field. The field is a torus: stepping off one
// edge re-enters on the opposite edge.
type Board struct {
	CellSize    int `json:"cell_size"`
	FieldWidth  int `json:"field_width"`
	FieldHeight int `json:"field_height"`
}

// Default returns the 640x480 board with 20px cells.
func Default() Board {
	return Board{
		CellSize:    DefaultCellSize,
		FieldWidth:  DefaultFieldWidth,
		FieldHeight: DefaultFieldHeight,
	}
}

// Validate checks that the field is a positive whole number of cells on both axes.
func (b Board) Validate() error {
	if b.CellSize <= 0 || b.FieldWidth <= 0 || b.FieldHeight <= 0 {
		return fmt.Errorf("%w: sizes must be positive (cell %d, field %dx%d)",
			ErrInvalidGeometry, b.CellSize, b.FieldWidth, b.FieldHeight)
	}
	if b.FieldWidth%b.CellSize != 0 || b.FieldHeight%b.CellSize != 0 {
		return fmt.Errorf("%w: field %dx%d is not a multiple of cell size %d",
			ErrInvalidGeometry, b.FieldWidth, b.FieldHeight, b.CellSize)
	}
	return nil
}

// GridWidth is the number of cells per row.
func (b Board) GridWidth() int { return b.FieldWidth / b.CellSize }

// GridHeight is the number of cells per column.
func (b Board) GridHeight() int { return b.FieldHeight / b.CellSize }

// CellCount is the total number of cells on the board.
func (b Board) CellCount() int { return b.GridWidth() * b.GridHeight() }

// Center returns the cell at the middle of the field, snapped to the grid.
func (b Board) Center() Point {
	return Point{
		X: (b.FieldWidth / 2) / b.CellSize * b.CellSize,
		Y: (b.FieldHeight / 2) / b.CellSize * b.CellSize,
	}
}

// Wrap reduces both axes of p into the field, independently.
func (b Board) Wrap(p Point) Point {
	return Point{
		X: wrap(p.X, b.FieldWidth),
		Y: wrap(p.Y, b.FieldHeight),
	}
}

func wrap(coord, size int) int {
	m := coord % size
	if m < 0 {
		m += size
	}
	return m
}

// Step moves p one cell in direction d, wrapping around the field edges.
func (b Board) Step(p Point, d Direction) Point {
	return b.Wrap(Point{
		X: p.X + d.DX*b.CellSize,
		Y: p.Y + d.DY*b.CellSize,
	})
}

// Contains reports whether p lies inside the field and on the grid.
func (b Board) Contains(p Point) bool {
	if p.X < 0 || p.X >= b.FieldWidth || p.Y < 0 || p.Y >= b.FieldHeight {
		return false
	}
	return p.X%b.CellSize == 0 && p.Y%b.CellSize == 0
}

// Cell returns the point for grid column col and row row.
func (b Board) Cell(col, row int) Point {
	return Point{X: col * b.CellSize, Y: row * b.CellSize}
}

// Cells returns every cell of the board in row-major order.
func (b Board) Cells() []Point {
	cells := make([]Point, 0, b.CellCount())
	for row := 0; row < b.GridHeight(); row++ {
		for col := 0; col < b.GridWidth(); col++ {
			cells = append(cells, b.Cell(col, row))
		}
	}
	return cells
}
