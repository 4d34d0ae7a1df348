package scatter3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinate is one plotted point.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

func NewCoordinate(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Vec returns the coordinate as a gonum vector.
func (c Coordinate) Vec() r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}

func (c Coordinate) finite() bool {
	for _, v := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sequence is an append-only list of coordinates. It always starts with the
// origin.
type Sequence struct {
	points []Coordinate
}

func NewSequence() *Sequence {
	return &Sequence{
		points: []Coordinate{{0, 0, 0}},
	}
}

func (s *Sequence) Append(c Coordinate) {
	s.points = append(s.points, c)
}

func (s *Sequence) Len() int {
	return len(s.points)
}

func (s *Sequence) At(i int) Coordinate {
	return s.points[i]
}

// Points returns a copy of the collected coordinates in arrival order.
func (s *Sequence) Points() []Coordinate {
	out := make([]Coordinate, len(s.points))
	copy(out, s.points)
	return out
}
