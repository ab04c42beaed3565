package rules

import "github.com/battlesnakeio/torus/board"

// Renderer paints grid cells. Implementations own the drawing surface.
type Renderer interface {
	DrawCell(p board.Point, size int, style Style)
}

// Drawable is anything that can paint itself with a Renderer.
type Drawable interface {
	Draw(r Renderer)
}
