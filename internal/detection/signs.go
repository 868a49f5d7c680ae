package detection

import (
	"image"
	"sort"

	"github.com/roadsight/stopsign/internal/imaging"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// BoundingBox is an axis-aligned box in pixel coordinates, expressed as
// origin plus size. Width and height are never negative.
type BoundingBox struct {
	X      int `json:"x"`      // Left edge of the box
	Y      int `json:"y"`      // Top edge of the box
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
}

// StopSign is a detected stop sign candidate.
//
// The polygon is the simplified outer contour of the red region; the
// bounding box encloses it. Both live in source-image pixel coordinates.
// Candidates carry no identity and no lifecycle beyond the detection call
// that produced them.
type StopSign struct {
	// BoundingBox encloses the approximated polygon.
	BoundingBox BoundingBox `json:"bounding_box"`

	// Polygon is the simplified contour, in order around the shape.
	Polygon []Point `json:"polygon"`

	// Area is the polygon's enclosed area in square pixels.
	Area float64 `json:"area"`
}

// Rect returns the bounding box as a standard image.Rectangle.
func (s StopSign) Rect() image.Rectangle {
	return image.Rect(
		s.BoundingBox.X,
		s.BoundingBox.Y,
		s.BoundingBox.X+s.BoundingBox.Width,
		s.BoundingBox.Y+s.BoundingBox.Height,
	)
}

// PolygonPoints returns the polygon as stdlib image points, for drawing.
func (s StopSign) PolygonPoints() []image.Point {
	pts := make([]image.Point, len(s.Polygon))
	for i, p := range s.Polygon {
		pts[i] = image.Pt(p.X, p.Y)
	}
	return pts
}

// SignsResult contains all stop sign candidates found in an image.
type SignsResult struct {
	// Signs is the list of candidates, sorted by area (largest first).
	Signs []StopSign `json:"signs"`

	// Count is the number of candidates detected.
	Count int `json:"count"`
}

// Options holds every tuning constant of the detector.
//
// The defaults reproduce the conventional stop sign heuristic; they are
// hand-picked values, not calibrated ones. Callers that change them own the
// consequences.
type Options struct {
	// Mask selects which pixels count as sign-colored.
	Mask imaging.MaskOptions

	// MorphIterations is the erode/dilate pass count for mask cleanup.
	MorphIterations int

	// EpsilonFraction scales the polygon approximation tolerance: the
	// absolute tolerance is this fraction of the contour's closed perimeter.
	EpsilonFraction float64

	// Vertices is the exact vertex count a candidate polygon must have.
	Vertices int

	// MinArea is the minimum enclosed polygon area in square pixels,
	// exclusive.
	MinArea float64
}

// DefaultOptions returns the standard detector tuning: red hue bands,
// two-pass morphological open, 2% approximation tolerance, exactly 8
// vertices, and a 1000-square-pixel area floor.
func DefaultOptions() Options {
	return Options{
		Mask:            imaging.RedMaskOptions(),
		MorphIterations: 2,
		EpsilonFraction: 0.02,
		Vertices:        8,
		MinArea:         1000,
	}
}

// DetectStopSigns finds red octagonal regions in an image.
//
// The pipeline is mask, clean, trace, simplify, filter; see the package
// documentation for details. An image with no qualifying region returns an
// empty result and a nil error; absence of signs is not a failure.
//
// Returns:
//   - *SignsResult: Candidates sorted by area (largest first).
//   - error: Currently always nil; reserved for future validation.
func DetectStopSigns(img image.Image, opts Options) (*SignsResult, error) {
	mask := imaging.HSVMask(img, opts.Mask)
	mask = imaging.Open(mask, opts.MorphIterations)

	contours := FindContours(mask)
	signs := make([]StopSign, 0)

	for _, contour := range contours {
		perimeter := Perimeter(contour, true)
		approx := ApproxPolygon(contour, opts.EpsilonFraction*perimeter)

		if len(approx) != opts.Vertices {
			continue
		}
		area := Area(approx)
		if area <= opts.MinArea {
			continue
		}

		box := boundingBox(approx)
		polygon := make([]Point, len(approx))
		for i, p := range approx {
			polygon[i] = Point{X: p.X, Y: p.Y}
		}

		signs = append(signs, StopSign{
			BoundingBox: BoundingBox{
				X:      box.Min.X,
				Y:      box.Min.Y,
				Width:  box.Dx(),
				Height: box.Dy(),
			},
			Polygon: polygon,
			Area:    area,
		})
	}

	sort.Slice(signs, func(i, j int) bool {
		return signs[i].Area > signs[j].Area
	})

	return &SignsResult{
		Signs: signs,
		Count: len(signs),
	}, nil
}
