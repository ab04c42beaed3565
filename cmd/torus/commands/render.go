package commands

import (
	"github.com/battlesnakeio/torus/board"
	"github.com/battlesnakeio/torus/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	// Terminal cells are about twice as tall as they are wide.
	columnsPerCell = 2
)

// termScreen draws the board with termbox. It implements worker.Screen.
type termScreen struct {
	board  board.Board
	left   int
	top    int
	status func() string
}

func newTermScreen(b board.Board, status func() string) *termScreen {
	return &termScreen{
		board:  b,
		left:   2,
		top:    2,
		status: status,
	}
}

func (s *termScreen) Clear() error {
	return termbox.Clear(defaultColor, defaultColor)
}

func (s *termScreen) DrawCell(p board.Point, size int, style rules.Style) {
	fill := termColor(style.Fill)
	x := s.left + (p.X/size)*columnsPerCell
	y := s.top + 1 + p.Y/size

	if style.Outlined {
		border := termColor(style.Border)
		termbox.SetCell(x, y, '[', border, fill)
		termbox.SetCell(x+1, y, ']', border, fill)
		return
	}
	for i := 0; i < columnsPerCell; i++ {
		termbox.SetCell(x+i, y, ' ', fill, fill)
	}
}

func (s *termScreen) Flush() error {
	s.renderBoard()
	if s.status != nil {
		tbprint(s.left, s.top-1, defaultColor, defaultColor, s.status())
	}
	return termbox.Flush()
}

func (s *termScreen) renderBoard() {
	var (
		width  = s.board.GridWidth() * columnsPerCell
		top    = s.top
		bottom = s.top + s.board.GridHeight() + 1
		left   = s.left
	)

	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

// termColor maps a hex color onto the xterm 6x6x6 color cube. termbox
// expects 256-color attributes to be offset by one.
func termColor(c rules.Color) termbox.Attribute {
	r, g, b, err := c.RGB()
	if err != nil {
		return defaultColor
	}
	return termbox.Attribute(cubeIndex(r, g, b) + 1)
}

func cubeIndex(r, g, b uint8) int {
	return 16 + 36*cubeLevel(r) + 6*cubeLevel(g) + cubeLevel(b)
}

func cubeLevel(v uint8) int {
	return (int(v)*5 + 127) / 255
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
