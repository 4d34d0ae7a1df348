package scatter3d

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 640
	screenHeight = 480
	defaultTitle = "scatter3d"
)

// Renderer displays a finished coordinate sequence. Implementations must not
// modify points.
type Renderer interface {
	Render(points []Coordinate) error
}

type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Logger *log.Logger
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:  defaultTitle,
		Width:  screenWidth,
		Height: screenHeight,
	}
}

// WindowRenderer shows the points in an interactive window. Render blocks
// until the window is closed.
type WindowRenderer struct {
	cfg WindowConfig
}

func NewWindowRenderer(cfg WindowConfig) *WindowRenderer {
	def := DefaultWindowConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return &WindowRenderer{cfg: cfg}
}

func (r *WindowRenderer) Render(points []Coordinate) error {
	scene := NewScene(points)
	r.cfg.Logger.Printf("Opening viewer with %d points", len(points))

	ebiten.SetWindowSize(r.cfg.Width, r.cfg.Height)
	ebiten.SetWindowTitle(r.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(scene, r.cfg.Width, r.cfg.Height, r.cfg.Logger)); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	r.cfg.Logger.Println("Viewer closed")
	return nil
}
