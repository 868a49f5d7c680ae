package detection

import (
	"image"
	"image/color"
	"math"
	"testing"
)

var (
	testRed   = color.RGBA{255, 0, 0, 255}
	testGreen = color.RGBA{0, 255, 0, 255}
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// octagonVertices returns the corners of a regular octagon with flat top and
// bottom edges, centered at (cx, cy) with the given circumradius.
func octagonVertices(cx, cy, radius int) []image.Point {
	verts := make([]image.Point, 0, 8)
	for k := 0; k < 8; k++ {
		angle := (22.5 + 45.0*float64(k)) * math.Pi / 180.0
		x := float64(cx) + float64(radius)*math.Cos(angle)
		y := float64(cy) + float64(radius)*math.Sin(angle)
		verts = append(verts, image.Pt(int(math.Round(x)), int(math.Round(y))))
	}
	return verts
}

// drawFilledPolygon rasterizes a filled polygon using even-odd ray casting.
func drawFilledPolygon(img *image.RGBA, verts []image.Point, c color.Color) {
	box := boundingBox(verts)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if insidePolygon(float64(x), float64(y), verts) {
				img.Set(x, y, c)
			}
		}
	}
}

func insidePolygon(x, y float64, verts []image.Point) bool {
	inside := false
	j := len(verts) - 1
	for i := range verts {
		xi, yi := float64(verts[i].X), float64(verts[i].Y)
		xj, yj := float64(verts[j].X), float64(verts[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

func TestDetectStopSigns_Octagon(t *testing.T) {
	img := createTestImage(200, 200, color.White)
	drawFilledPolygon(img, octagonVertices(100, 100, 60), testRed)

	result, err := DetectStopSigns(img, DefaultOptions())
	if err != nil {
		t.Fatalf("DetectStopSigns failed: %v", err)
	}

	if result.Count != 1 {
		t.Fatalf("expected 1 candidate, got %d", result.Count)
	}

	sign := result.Signs[0]
	if len(sign.Polygon) != 8 {
		t.Errorf("expected an 8-vertex polygon, got %d vertices", len(sign.Polygon))
	}
	if sign.Area <= 1000 {
		t.Errorf("expected area above 1000, got %.1f", sign.Area)
	}

	// The octagon's horizontal extent is radius*cos(22.5°) ≈ 55px each side.
	if sign.BoundingBox.X < 35 || sign.BoundingBox.X > 55 {
		t.Errorf("bounding box origin X = %d, want roughly 45", sign.BoundingBox.X)
	}
	if sign.BoundingBox.Width < 95 || sign.BoundingBox.Width > 125 {
		t.Errorf("bounding box width = %d, want roughly 111", sign.BoundingBox.Width)
	}
}

func TestDetectStopSigns_SquareRejected(t *testing.T) {
	img := createTestImage(200, 200, color.White)
	square := []image.Point{{60, 60}, {140, 60}, {140, 140}, {60, 140}}
	drawFilledPolygon(img, square, testRed)

	result, err := DetectStopSigns(img, DefaultOptions())
	if err != nil {
		t.Fatalf("DetectStopSigns failed: %v", err)
	}

	// A square simplifies to 4 vertices and must be filtered out even though
	// its area is well above the minimum.
	if result.Count != 0 {
		t.Errorf("expected 0 candidates for a red square, got %d", result.Count)
	}
}

func TestDetectStopSigns_NoRedPixels(t *testing.T) {
	img := createTestImage(100, 100, color.White)

	result, err := DetectStopSigns(img, DefaultOptions())
	if err != nil {
		t.Fatalf("DetectStopSigns failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected 0 candidates in a blank image, got %d", result.Count)
	}

	drawFilledPolygon(img, octagonVertices(50, 50, 30), testGreen)
	result, err = DetectStopSigns(img, DefaultOptions())
	if err != nil {
		t.Fatalf("DetectStopSigns failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected 0 candidates for a green octagon, got %d", result.Count)
	}
}

func TestDetectStopSigns_MinArea(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	// Circumradius 12 gives an octagon area around 400 square pixels.
	drawFilledPolygon(img, octagonVertices(50, 50, 12), testRed)

	result, err := DetectStopSigns(img, DefaultOptions())
	if err != nil {
		t.Fatalf("DetectStopSigns failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected small octagon to be filtered by area, got %d candidates", result.Count)
	}
}

func TestDetectStopSigns_SortedByArea(t *testing.T) {
	img := createTestImage(400, 200, color.White)
	drawFilledPolygon(img, octagonVertices(100, 100, 60), testRed)
	drawFilledPolygon(img, octagonVertices(300, 100, 30), testRed)

	result, err := DetectStopSigns(img, DefaultOptions())
	if err != nil {
		t.Fatalf("DetectStopSigns failed: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 candidates, got %d", result.Count)
	}
	if result.Signs[0].Area <= result.Signs[1].Area {
		t.Errorf("expected candidates sorted by area descending: %.1f then %.1f",
			result.Signs[0].Area, result.Signs[1].Area)
	}
}
