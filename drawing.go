package scatter3d

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	markerRadius      = 4
	markerEdgeWidth   = 1
	axisStrokeWidth   = 1.5
	markerEdgeDarkens = 0.6
)

// drawMarker paints one circular marker with a slightly darker rim.
func drawMarker(screen *ebiten.Image, m Marker) {
	x, y := float32(m.Screen.X), float32(m.Screen.Y)
	fill := m.Color()
	vector.DrawFilledCircle(screen, x, y, markerRadius, fill, true)

	edge := color.NRGBA{
		R: uint8(float64(fill.R) * markerEdgeDarkens),
		G: uint8(float64(fill.G) * markerEdgeDarkens),
		B: uint8(float64(fill.B) * markerEdgeDarkens),
		A: fill.A,
	}
	vector.StrokeCircle(screen, x, y, markerRadius, markerEdgeWidth, edge, true)
}

func drawSegment(screen *ebiten.Image, s Segment) {
	vector.StrokeLine(screen,
		float32(s.From.X), float32(s.From.Y),
		float32(s.To.X), float32(s.To.Y),
		axisStrokeWidth, s.Color, true)
}
