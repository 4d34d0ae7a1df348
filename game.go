package scatter3d

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	dragSensitivity = 200.0
	zoomStep        = 1.1
)

var background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Game is the ebiten view of a Scene.
type Game struct {
	scene         *Scene
	width, height int
	dragging      bool
	lastX, lastY  int
	logger        *log.Logger
}

func NewGame(scene *Scene, width, height int, logger *log.Logger) *Game {
	return &Game{
		scene:  scene,
		width:  width,
		height: height,
		logger: logger,
	}
}

// dragToOrbit converts a cursor move in pixels to camera yaw and pitch.
func dragToOrbit(dx, dy int) (dYaw, dPitch float64) {
	return -float64(dx) / dragSensitivity, float64(dy) / dragSensitivity
}

// wheelToZoom converts a vertical wheel offset to a distance factor.
func wheelToZoom(wheelY float64) float64 {
	return math.Pow(zoomStep, -wheelY)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.logger.Println("Viewer closed from keyboard")
		return ebiten.Termination
	}

	cam := g.scene.Camera()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		cam.Orbit(dragToOrbit(x-g.lastX, y-g.lastY))
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.Zoom(wheelToZoom(wy))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, s := range g.scene.Axes(g.width, g.height) {
		drawSegment(screen, s)
	}
	for _, m := range g.scene.Markers(g.width, g.height) {
		drawMarker(screen, m)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("points: %d  FPS: %0.2f", g.scene.PointCount(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
