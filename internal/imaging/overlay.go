package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Detection overlay colors follow the usual convention for sign overlays:
// green bounding boxes, blue shape outlines.
var (
	boxColor     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	outlineColor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
)

// DrawDetections returns a copy of img with detection results painted on:
// each bounding box as a green rectangle outline (3px) and each polygon as a
// closed blue polyline (2px). The source image is never modified.
func DrawDetections(img image.Image, boxes []image.Rectangle, polygons [][]image.Point) *image.NRGBA {
	out := imaging.Clone(img)

	for _, r := range boxes {
		drawRect(out, r, boxColor, 3)
	}
	for _, poly := range polygons {
		drawPolygon(out, poly, outlineColor, 2)
	}

	return out
}

// SaveImage writes an image to disk, with the format chosen from the file
// extension (.png, .jpg/.jpeg, .gif, .tif, .bmp).
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// drawRect draws a rectangle outline of the given thickness, growing
// outward from the rectangle edge.
func drawRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		ring := r.Inset(-t)
		for x := ring.Min.X; x < ring.Max.X; x++ {
			setPixel(dst, x, ring.Min.Y, c)
			setPixel(dst, x, ring.Max.Y-1, c)
		}
		for y := ring.Min.Y; y < ring.Max.Y; y++ {
			setPixel(dst, ring.Min.X, y, c)
			setPixel(dst, ring.Max.X-1, y, c)
		}
	}
}

// drawPolygon draws a closed polyline through the given vertices.
func drawPolygon(dst *image.NRGBA, pts []image.Point, c color.NRGBA, thickness int) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		drawLine(dst, pts[i], next, c, thickness)
	}
}

// drawLine draws a line segment with Bresenham's algorithm, stamping a
// thickness x thickness square at each step.
func drawLine(dst *image.NRGBA, a, b image.Point, c color.NRGBA, thickness int) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		stamp(dst, x, y, c, thickness)
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// stamp fills a small square centered on (x, y).
func stamp(dst *image.NRGBA, x, y int, c color.NRGBA, size int) {
	half := size / 2
	for oy := -half; oy <= half; oy++ {
		for ox := -half; ox <= half; ox++ {
			setPixel(dst, x+ox, y+oy, c)
		}
	}
}

// setPixel writes a pixel with bounds checking.
func setPixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	b := dst.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		dst.SetNRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
