package scatter3d

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// imageDPI matches the raster DPI gonum/plot uses for PNG output.
const imageDPI = 96

type ImageConfig struct {
	Path   string
	Title  string
	Width  int // pixels
	Height int // pixels
	Logger *log.Logger
}

// ImageRenderer writes the default camera view of the points to an image
// file. The format follows the file extension (png, svg, pdf, ...).
type ImageRenderer struct {
	cfg ImageConfig
}

func NewImageRenderer(cfg ImageConfig) *ImageRenderer {
	if cfg.Width <= 0 {
		cfg.Width = screenWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = screenHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return &ImageRenderer{cfg: cfg}
}

func (r *ImageRenderer) Render(points []Coordinate) error {
	if r.cfg.Path == "" {
		return fmt.Errorf("image renderer: no output path")
	}
	p, err := r.scatterPlot(points)
	if err != nil {
		return err
	}
	if err := p.Save(pixels(r.cfg.Width), pixels(r.cfg.Height), r.cfg.Path); err != nil {
		return fmt.Errorf("could not save plot to %s: %w", r.cfg.Path, err)
	}
	r.cfg.Logger.Printf("Wrote %d points to %s", len(points), r.cfg.Path)
	return nil
}

// WritePlot renders points to w in the given format ("png", "svg", ...).
func (r *ImageRenderer) WritePlot(w io.Writer, format string, points []Coordinate) error {
	p, err := r.scatterPlot(points)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(pixels(r.cfg.Width), pixels(r.cfg.Height), strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("could not create %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("could not write %s plot: %w", format, err)
	}
	return nil
}

// ImageFormat returns the format gonum/plot will pick for path.
func ImageFormat(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / imageDPI
}

// scatterPlot lays the projected view out in a plot whose data space is the
// image in pixels, y pointing up.
func (r *ImageRenderer) scatterPlot(points []Coordinate) (*plot.Plot, error) {
	w, h := r.cfg.Width, r.cfg.Height
	scene := NewScene(points)

	p := plot.New()
	p.Title.Text = r.cfg.Title
	p.HideAxes()

	for _, s := range scene.Axes(w, h) {
		line, err := plotter.NewLine(plotter.XYs{
			{X: s.From.X, Y: float64(h) - s.From.Y},
			{X: s.To.X, Y: float64(h) - s.To.Y},
		})
		if err != nil {
			return nil, fmt.Errorf("could not build axis line: %w", err)
		}
		line.LineStyle.Color = s.Color
		line.LineStyle.Width = vg.Points(axisStrokeWidth)
		p.Add(line)
	}

	markers := scene.Markers(w, h)
	if len(markers) > 0 {
		xys := make(plotter.XYs, len(markers))
		for i, m := range markers {
			xys[i].X = m.Screen.X
			xys[i].Y = float64(h) - m.Screen.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("could not build scatter: %w", err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  markerColor,
			Radius: vg.Points(markerRadius),
			Shape:  draw.CircleGlyph{},
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			gs := sc.GlyphStyle
			gs.Color = markers[i].Color()
			return gs
		}
		p.Add(sc)
	}

	p.X.Min, p.X.Max = 0, float64(w)
	p.Y.Min, p.Y.Max = 0, float64(h)
	return p, nil
}
