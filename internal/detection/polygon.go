package detection

import (
	"image"
	"math"
)

// Perimeter returns the arc length of a point chain. When closed is true the
// segment from the last point back to the first is included.
func Perimeter(pts []image.Point, closed bool) float64 {
	if len(pts) < 2 {
		return 0
	}
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pointDistance(pts[i-1], pts[i])
	}
	if closed {
		length += pointDistance(pts[len(pts)-1], pts[0])
	}
	return length
}

// Area returns the absolute area enclosed by a closed polygon, computed with
// the shoelace formula. Degenerate polygons (fewer than 3 vertices) have
// zero area.
func Area(pts []image.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += float64(pts[i].X)*float64(pts[j].Y) - float64(pts[j].X)*float64(pts[i].Y)
	}
	return math.Abs(sum) / 2
}

// ApproxPolygon simplifies a closed contour to a polygon using
// Douglas-Peucker simplification with the given absolute tolerance.
//
// The contour is treated as a closed curve: it is split at the two mutually
// farthest boundary points, each open half is simplified independently, and
// the halves are rejoined. A final pass drops vertices that lie within the
// tolerance of the chord between their neighbors, so the split points
// themselves do not survive unless the curve genuinely turns there.
//
// Tolerance is typically derived from the contour perimeter (the detector
// uses 2% of the closed arc length). Inputs with 3 or fewer points are
// returned as-is.
func ApproxPolygon(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) <= 3 {
		out := make([]image.Point, len(pts))
		copy(out, pts)
		return out
	}

	// Anchor the split at a diameter of the contour: the point farthest from
	// pts[0], then the point farthest from that one.
	a := farthestFrom(pts, 0)
	b := farthestFrom(pts, a)

	// Rotate so the first anchor sits at index 0.
	n := len(pts)
	rotated := make([]image.Point, 0, n)
	rotated = append(rotated, pts[a:]...)
	rotated = append(rotated, pts[:a]...)
	split := ((b - a) + n) % n

	firstHalf := douglasPeucker(rotated[:split+1], epsilon)
	secondHalf := douglasPeucker(append(rotated[split:], rotated[0]), epsilon)

	// Join, dropping the duplicated anchor endpoints.
	poly := make([]image.Point, 0, len(firstHalf)+len(secondHalf)-2)
	poly = append(poly, firstHalf...)
	poly = append(poly, secondHalf[1:len(secondHalf)-1]...)

	return pruneCollinear(poly, epsilon)
}

// farthestFrom returns the index of the point with maximum distance from
// pts[from].
func farthestFrom(pts []image.Point, from int) int {
	best, bestDist := from, -1.0
	for i, p := range pts {
		if d := pointDistance(pts[from], p); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// douglasPeucker simplifies an open chain, always keeping both endpoints.
func douglasPeucker(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) < 3 {
		out := make([]image.Point, len(pts))
		copy(out, pts)
		return out
	}

	worst, worstDist := 0, 0.0
	for i := 1; i < len(pts)-1; i++ {
		if d := segmentDistance(pts[i], pts[0], pts[len(pts)-1]); d > worstDist {
			worst, worstDist = i, d
		}
	}

	if worstDist <= epsilon {
		return []image.Point{pts[0], pts[len(pts)-1]}
	}

	left := douglasPeucker(pts[:worst+1], epsilon)
	right := douglasPeucker(pts[worst:], epsilon)
	return append(left[:len(left)-1], right...)
}

// pruneCollinear removes ring vertices that deviate less than epsilon from
// the chord between their neighbors. Repeats until stable so chains of
// near-collinear points collapse; never reduces the ring below a triangle.
func pruneCollinear(poly []image.Point, epsilon float64) []image.Point {
	changed := true
	for changed && len(poly) > 3 {
		changed = false
		for i := 0; i < len(poly); i++ {
			prev := poly[(i+len(poly)-1)%len(poly)]
			next := poly[(i+1)%len(poly)]
			if segmentDistance(poly[i], prev, next) <= epsilon {
				poly = append(poly[:i], poly[i+1:]...)
				changed = true
				break
			}
		}
	}
	return poly
}

// segmentDistance returns the distance from p to the segment a-b.
func segmentDistance(p, a, b image.Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	px, py := float64(p.X), float64(p.Y)

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

func pointDistance(a, b image.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
