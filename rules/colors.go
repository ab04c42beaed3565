package rules

import (
	"fmt"
	"strconv"
)

// Color is a "#rrggbb" hex color.
type Color string

// Palette used by the game objects.
const (
	BackgroundColor Color = "#000000"
	SnakeColor      Color = "#00ff00"
	AppleColor      Color = "#ff0000"
	BorderColor     Color = "#5dd8e4"
)

// RGB decodes the color into its channels.
func (c Color) RGB() (r, g, b uint8, err error) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("rules: invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("rules: invalid color %q: %v", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Style describes how a single cell is painted.
type Style struct {
	Fill     Color
	Border   Color
	Outlined bool
}

var (
	snakeStyle = Style{Fill: SnakeColor, Border: BorderColor, Outlined: true}
	appleStyle = Style{Fill: AppleColor, Border: BorderColor, Outlined: true}
)
