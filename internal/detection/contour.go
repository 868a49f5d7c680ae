package detection

import "image"

// foreground reports whether a mask pixel counts as set.
// Masks are grayscale; anything at or above mid-gray is foreground.
func foreground(mask *image.Gray, x, y int) bool {
	b := mask.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return false
	}
	return mask.GrayAt(x, y).Y >= 128
}

// mooreDirs lists the 8-connected neighborhood in clockwise order,
// starting from the western neighbor. Image coordinates: Y grows downward.
var mooreDirs = [8]image.Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// FindContours extracts the external boundary of every connected foreground
// component in a binary mask.
//
// Each returned contour is an ordered, closed chain of boundary pixels
// produced by Moore-neighbor tracing, suitable for perimeter measurement and
// polygon approximation. Only outermost boundaries are traced: holes inside
// a component are ignored, matching the behavior of external-only contour
// retrieval in typical vision libraries.
//
// Components are discovered by raster scan, so the first pixel seen for a
// component is always its topmost-leftmost boundary pixel. Connectivity is
// 8-connected for both tracing and component labeling.
//
// An empty mask yields an empty (non-nil) result.
func FindContours(mask *image.Gray) [][]image.Point {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	visited := make([][]bool, h)
	for y := 0; y < h; y++ {
		visited[y] = make([]bool, w)
	}

	contours := make([][]image.Point, 0)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if visited[y-b.Min.Y][x-b.Min.X] || !foreground(mask, x, y) {
				continue
			}
			start := image.Pt(x, y)
			contours = append(contours, traceBoundary(mask, start))
			// Mark the whole component so interior pixels and any hole
			// boundaries are never used as new starting points.
			markComponent(mask, visited, start)
		}
	}

	return contours
}

// traceBoundary walks the outer boundary of the component containing start
// using Moore-neighbor tracing. The walk terminates when it stands on the
// start pixel again and the next move would repeat the very first move,
// which handles thin one-pixel-wide blobs that revisit pixels.
//
// start must be the topmost-leftmost pixel of its component, which guarantees
// the western neighbor is background and gives the walk a valid backtrack
// position. A single isolated pixel yields a one-point contour.
func traceBoundary(mask *image.Gray, start image.Point) []image.Point {
	contour := []image.Point{start}

	backtrack := start.Add(image.Pt(-1, 0))
	cur := start

	var second image.Point
	haveSecond := false

	// Upper bound on boundary length; guards against pathological masks.
	b := mask.Bounds()
	maxSteps := 4 * (b.Dx()*b.Dy() + 1)

	for step := 0; step < maxSteps; step++ {
		entry := dirIndex(backtrack.Sub(cur))

		var next, nextBacktrack image.Point
		found := false
		for k := 1; k <= 8; k++ {
			j := (entry + k) % 8
			cand := cur.Add(mooreDirs[j])
			if foreground(mask, cand.X, cand.Y) {
				// Backtrack becomes the last background cell examined.
				nextBacktrack = cur.Add(mooreDirs[(entry+k-1)%8])
				next = cand
				found = true
				break
			}
		}
		if !found {
			// Isolated pixel.
			break
		}

		if !haveSecond {
			second = next
			haveSecond = true
		} else if cur == start && next == second {
			break
		}

		backtrack = nextBacktrack
		cur = next
		if cur != start {
			contour = append(contour, cur)
		}
	}

	return contour
}

// dirIndex returns the index of a unit offset in mooreDirs.
func dirIndex(d image.Point) int {
	for i, m := range mooreDirs {
		if m == d {
			return i
		}
	}
	return 0
}

// markComponent flood-fills the 8-connected component containing start,
// marking every pixel as visited. Stack-based to avoid deep recursion on
// large blobs.
func markComponent(mask *image.Gray, visited [][]bool, start image.Point) {
	b := mask.Bounds()
	stack := []image.Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < b.Min.X || p.X >= b.Max.X || p.Y < b.Min.Y || p.Y >= b.Max.Y {
			continue
		}
		vy, vx := p.Y-b.Min.Y, p.X-b.Min.X
		if visited[vy][vx] || !foreground(mask, p.X, p.Y) {
			continue
		}
		visited[vy][vx] = true

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Pt(p.X+dx, p.Y+dy))
			}
		}
	}
}

// boundingBox returns the axis-aligned bounding rectangle of a point chain,
// with the usual exclusive maximum.
func boundingBox(pts []image.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
