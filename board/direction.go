package board

import "fmt"

// Direction is a unit vector on the grid.
type Direction struct {
	DX int
	DY int
}

// The four movement directions. Screen coordinates grow downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists every valid direction.
var Directions = []Direction{Up, Down, Left, Right}

// Opposite returns the negated direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if v == d {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d, %d)", d.DX, d.DY)
}

// ParseDirection converts a direction name back into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("board: unknown direction %q", name)
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("board: cannot marshal %s", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
