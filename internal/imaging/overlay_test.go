package imaging

import (
	"image"
	"image/color"
	"testing"
)

func blackImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}

func TestDrawDetections_Boxes(t *testing.T) {
	src := blackImage(50, 50)
	box := image.Rect(10, 10, 30, 30)

	out := DrawDetections(src, []image.Rectangle{box}, nil)

	for _, p := range []image.Point{{10, 10}, {29, 10}, {10, 29}, {29, 29}, {20, 10}} {
		if out.NRGBAAt(p.X, p.Y) != boxColor {
			t.Errorf("pixel %v = %v, want box color", p, out.NRGBAAt(p.X, p.Y))
		}
	}

	// Box interior stays untouched.
	if got := out.NRGBAAt(20, 20); got != (color.NRGBA{A: 255}) {
		t.Errorf("interior pixel painted: %v", got)
	}
}

func TestDrawDetections_Polygons(t *testing.T) {
	src := blackImage(60, 60)
	poly := []image.Point{{10, 10}, {40, 10}, {25, 40}}

	out := DrawDetections(src, nil, [][]image.Point{poly})

	// A point on the first edge and each vertex must be painted.
	for _, p := range []image.Point{{25, 10}, {10, 10}, {40, 10}, {25, 40}} {
		if out.NRGBAAt(p.X, p.Y) != outlineColor {
			t.Errorf("pixel %v = %v, want outline color", p, out.NRGBAAt(p.X, p.Y))
		}
	}
}

func TestDrawDetections_SourceUnmodified(t *testing.T) {
	src := blackImage(40, 40)
	DrawDetections(src, []image.Rectangle{image.Rect(5, 5, 20, 20)}, nil)

	if got := src.NRGBAAt(5, 5); got != (color.NRGBA{A: 255}) {
		t.Errorf("source image modified at (5,5): %v", got)
	}
}

func TestDrawDetections_ClipsAtEdges(t *testing.T) {
	src := blackImage(20, 20)
	// Box partially outside the canvas; must not panic.
	out := DrawDetections(src, []image.Rectangle{image.Rect(-5, -5, 10, 10)}, nil)

	// Bottom edge of the box at y=9 should be painted inside the canvas.
	if out.NRGBAAt(5, 9) != boxColor {
		t.Error("clipped box edge not drawn inside canvas")
	}
}
