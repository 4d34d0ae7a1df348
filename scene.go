package scatter3d

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	markerColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	axisColors  = [3]color.RGBA{
		{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		{R: 0x1f, G: 0x3f, B: 0xb4, A: 0xff},
	}
)

// minShade is the opacity of the farthest marker.
const minShade = 0.3

// Bounds returns the axis-aligned box around the finite points. The box of
// a slice with no finite point is the zero box.
func Bounds(points []Coordinate) r3.Box {
	var box r3.Box
	found := false
	for _, p := range points {
		if !p.finite() {
			continue
		}
		if !found {
			box = r3.Box{Min: p.Vec(), Max: p.Vec()}
			found = true
			continue
		}
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Min.Z = math.Min(box.Min.Z, p.Z)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
		box.Max.Z = math.Max(box.Max.Z, p.Z)
	}
	return box
}

func boxCenter(b r3.Box) r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// boxRadius is half the box diagonal, or 1 for a single point.
func boxRadius(b r3.Box) float64 {
	r := r3.Norm(r3.Sub(b.Max, b.Min)) / 2
	if r == 0 || math.IsInf(r, 0) {
		return 1
	}
	return r
}

// padBox grows flat sides so every axis has some extent to draw.
func padBox(b r3.Box) r3.Box {
	pad := boxRadius(b) / 2
	grow := func(lo, hi float64) (float64, float64) {
		if hi-lo == 0 {
			return lo - pad, hi + pad
		}
		return lo, hi
	}
	b.Min.X, b.Max.X = grow(b.Min.X, b.Max.X)
	b.Min.Y, b.Max.Y = grow(b.Min.Y, b.Max.Y)
	b.Min.Z, b.Max.Z = grow(b.Min.Z, b.Max.Z)
	return b
}

// Marker is a projected point ready to paint.
type Marker struct {
	Index  int
	Screen ScreenPoint
	Shade  float64
}

func (m Marker) Color() color.NRGBA {
	return color.NRGBA{
		R: markerColor.R,
		G: markerColor.G,
		B: markerColor.B,
		A: uint8(math.Round(255 * m.Shade)),
	}
}

type Segment struct {
	From, To ScreenPoint
	Color    color.RGBA
}

// Scene holds the handed-off points and the camera looking at them.
type Scene struct {
	points []Coordinate
	bounds r3.Box
	camera *Camera
}

func NewScene(points []Coordinate) *Scene {
	b := padBox(Bounds(points))
	return &Scene{
		points: points,
		bounds: b,
		camera: NewCameraFor(b),
	}
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

func (s *Scene) Bounds() r3.Box {
	return s.bounds
}

func (s *Scene) PointCount() int {
	return len(s.points)
}

// Markers projects the points and returns the visible ones sorted far to
// near, so painting them in order draws the nearest on top.
func (s *Scene) Markers(width, height int) []Marker {
	proj := s.camera.Projector(width, height)

	markers := make([]Marker, 0, len(s.points))
	for i, p := range s.points {
		sp, ok := proj.Project(p.Vec())
		if !ok {
			continue
		}
		markers = append(markers, Marker{Index: i, Screen: sp, Shade: 1})
	}

	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Screen.Depth > markers[j].Screen.Depth
	})

	if len(markers) > 1 {
		far := markers[0].Screen.Depth
		near := markers[len(markers)-1].Screen.Depth
		if span := far - near; span > 0 {
			for i := range markers {
				t := (markers[i].Screen.Depth - near) / span
				markers[i].Shade = 1 - (1-minShade)*t
			}
		}
	}
	return markers
}

// Axes returns the X, Y and Z edges of the bounds that meet at the minimum
// corner. Edges with an endpoint behind the camera are dropped.
func (s *Scene) Axes(width, height int) []Segment {
	proj := s.camera.Projector(width, height)
	lo, hi := s.bounds.Min, s.bounds.Max
	ends := [3]r3.Vec{
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
	}

	from, ok := proj.Project(lo)
	if !ok {
		return nil
	}
	segs := make([]Segment, 0, 3)
	for i, end := range ends {
		to, ok := proj.Project(end)
		if !ok {
			continue
		}
		segs = append(segs, Segment{From: from, To: to, Color: axisColors[i]})
	}
	return segs
}
