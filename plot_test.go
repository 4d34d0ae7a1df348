package scatter3d

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var samplePoints = []Coordinate{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}, {-2, 1, 0.5}}

func TestImageRendererWritesPNG(t *testing.T) {
	r := NewImageRenderer(ImageConfig{Width: 320, Height: 240, Title: "test"})

	var buf bytes.Buffer
	if err := r.WritePlot(&buf, "png", samplePoints); err != nil {
		t.Fatalf("WritePlot() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if abs(b.Dx()-320) > 1 || abs(b.Dy()-240) > 1 {
		t.Errorf("image is %dx%d, want about 320x240", b.Dx(), b.Dy())
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestImageRendererWritesSVG(t *testing.T) {
	r := NewImageRenderer(ImageConfig{})

	var buf bytes.Buffer
	if err := r.WritePlot(&buf, "SVG", samplePoints); err != nil {
		t.Fatalf("WritePlot() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output does not contain an svg element")
	}
}

func TestImageRendererUnknownFormat(t *testing.T) {
	r := NewImageRenderer(ImageConfig{})
	if err := r.WritePlot(&bytes.Buffer{}, "bogus", samplePoints); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestImageRendererRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.png")
	r := NewImageRenderer(ImageConfig{Path: path, Width: 200, Height: 150})

	if err := r.Render(samplePoints); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output file is not a PNG: %v", err)
	}
}

func TestImageRendererOriginOnly(t *testing.T) {
	r := NewImageRenderer(ImageConfig{Width: 100, Height: 100})
	if err := r.WritePlot(&bytes.Buffer{}, "png", []Coordinate{{0, 0, 0}}); err != nil {
		t.Fatalf("WritePlot() error = %v", err)
	}
}

func TestImageRendererNeedsPath(t *testing.T) {
	r := NewImageRenderer(ImageConfig{})
	if err := r.Render(samplePoints); err == nil {
		t.Fatal("expected an error without an output path")
	}
}

func TestImageFormat(t *testing.T) {
	testCases := map[string]string{
		"out.png":        "png",
		"dir/plot.SVG":   "svg",
		"/tmp/a.b/c.pdf": "pdf",
		"noextension":    "",
	}
	for path, want := range testCases {
		if got := ImageFormat(path); got != want {
			t.Errorf("ImageFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
