package board

import "fmt"

// Point is a grid coordinate in pixel units. Points produced by a Board are
// always multiples of the cell size and inside the field.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Contains reports whether p is one of points.
func Contains(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equal(p) {
			return true
		}
	}
	return false
}
